package embedded

import (
	"errors"
	"reflect"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/celebration.yaml": {Data: []byte("window:\n  title: test\n")},
		"data/extra.yaml":       {Data: []byte("x: 1\n")},
	}
}

// reset 恢复未初始化状态，避免影响其他测试
func reset(t *testing.T) {
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset(t)

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) 后不应视为已初始化")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Init() 后应视为已初始化")
	}
}

// TestNotInitialized 测试未初始化时的各个入口
func TestNotInitialized(t *testing.T) {
	reset(t)
	dataFS = nil
	initialized = false

	if _, err := Open("data/celebration.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() err = %v, 期望 ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/celebration.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() err = %v, 期望 ErrNotInitialized", err)
	}
	if _, err := Glob("data/*.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Glob() err = %v, 期望 ErrNotInitialized", err)
	}
	if Exists("data/celebration.yaml") {
		t.Error("未初始化时 Exists() 应返回 false")
	}
}

func TestReadFile(t *testing.T) {
	reset(t)
	Init(testFS())

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"正常路径", "data/celebration.yaml", "window:\n  title: test\n", false},
		{"带 ./ 前缀", "./data/celebration.yaml", "window:\n  title: test\n", false},
		{"不存在的文件", "data/missing.yaml", "", true},
		{"错误的前缀", "assets/image.png", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) err = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, 期望 %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	reset(t)
	Init(testFS())

	if !Exists("data/extra.yaml") {
		t.Error("data/extra.yaml 应存在")
	}
	if Exists("data/none.yaml") {
		t.Error("data/none.yaml 不应存在")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob 失败: %v", err)
	}
	expected := []string{"data/celebration.yaml", "data/extra.yaml"}
	if !reflect.DeepEqual(matches, expected) {
		t.Errorf("Glob = %v, 期望 %v", matches, expected)
	}
}
