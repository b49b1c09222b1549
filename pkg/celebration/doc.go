// Package celebration 实现生日庆祝流程的领域逻辑
//
// 包含四个场景之间的流程控制器（FlowController）、两个带完成门槛的互动
// （吹蜡烛 CandleActivity、切蛋糕 CutActivity）、信封互动（LetterActivity）
// 以及驱动所有延迟回调的帧驱动调度器（Scheduler）。
//
// 本包不依赖任何渲染库：渲染层通过 Session 的事件方法上报交互，
// 通过 Session.View() 读取快照绘制画面，通过 Effects 接口接收粒子特效请求。
//
// 所有状态变更都在调用方的单一线程（游戏循环）内同步完成，本包不做加锁。
package celebration
