package utils

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSet 场景共用的字体集合
// 使用内置的 Go 字体，无需外部字体文件
type FontSet struct {
	Hero  *text.GoTextFace
	Title *text.GoTextFace
	Body  *text.GoTextFace
	Small *text.GoTextFace
	Bold  *text.GoTextFace
}

// FontSizes 各级字号（像素）
type FontSizes struct {
	Hero, Title, Body, Small float64
}

// NewFontSet 加载 Go 字体并创建各级字号的字体
func NewFontSet(sizes FontSizes) (*FontSet, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}

	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &FontSet{
		Hero:  &text.GoTextFace{Source: bold, Size: sizes.Hero},
		Title: &text.GoTextFace{Source: bold, Size: sizes.Title},
		Body:  &text.GoTextFace{Source: regular, Size: sizes.Body},
		Small: &text.GoTextFace{Source: regular, Size: sizes.Small},
		Bold:  &text.GoTextFace{Source: bold, Size: sizes.Body},
	}, nil
}
