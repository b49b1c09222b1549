package celebration

// TaskID 调度任务标识，0 表示无效任务
type TaskID uint64

// timeEpsilon 用于吸收逐帧累加 1/60 秒产生的浮点误差
const timeEpsilon = 1e-9

type scheduledTask struct {
	id  TaskID
	due float64
	fn  func()
}

// Scheduler 帧驱动的一次性延迟任务调度器
//
// 时间只随 Update(dt) 前进，没有 goroutine，也不读取系统时钟，
// 因此在游戏循环和单元测试里行为完全一致。
//
// 规则：
//   - 任务只执行一次，执行前可以通过 Cancel 取消
//   - 同一次 Update 中到期的任务按（到期时间，创建顺序）执行
//   - 回调里新建的任务最早在下一次 Update 执行
type Scheduler struct {
	now    float64
	nextID TaskID
	tasks  []scheduledTask
}

// NewScheduler 创建调度器，时间从 0 开始
func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Now 返回调度器当前时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending 返回尚未执行的任务数量
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// After 在 delay 秒后执行 fn
// fn 为 nil 时返回 0，负延迟按 0 处理
func (s *Scheduler) After(delay float64, fn func()) TaskID {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}

	id := s.nextID
	s.nextID++
	s.tasks = append(s.tasks, scheduledTask{id: id, due: s.now + delay, fn: fn})
	return id
}

// Cancel 取消尚未执行的任务
// 任务不存在（已执行、已取消或 id 无效）时返回 false
func (s *Scheduler) Cancel(id TaskID) bool {
	if id == 0 {
		return false
	}
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll 取消全部任务
func (s *Scheduler) CancelAll() {
	s.tasks = s.tasks[:0]
}

// Update 推进时间并执行所有到期任务
func (s *Scheduler) Update(dt float64) {
	if dt > 0 {
		s.now += dt
	}

	// 本帧开始之后创建的任务留到下一帧
	limit := s.nextID
	for {
		idx := s.nextDue(limit)
		if idx < 0 {
			return
		}
		task := s.tasks[idx]
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		task.fn()
	}
}

// nextDue 返回最早到期任务的下标，没有到期任务时返回 -1
func (s *Scheduler) nextDue(limit TaskID) int {
	best := -1
	for i, t := range s.tasks {
		if t.id >= limit || t.due > s.now+timeEpsilon {
			continue
		}
		if best < 0 || t.due < s.tasks[best].due || (t.due == s.tasks[best].due && t.id < s.tasks[best].id) {
			best = i
		}
	}
	return best
}
