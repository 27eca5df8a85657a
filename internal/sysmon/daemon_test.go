package sysmon

import (
	"context"
	"testing"
	"time"
)

func TestRunLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ran := make(chan struct{}, 16)
	done := make(chan struct{})

	go func() {
		RunLoop(ctx, 10*time.Millisecond, func() {
			ran <- struct{}{}
		})
		close(done)
	}()

	// 至少完成三轮后取消
	for i := 0; i < 3; i++ {
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatal("循环执行次数不足")
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("取消后循环未退出")
	}
}

func TestRunLoopRunsImmediately(t *testing.T) {
	// 第一轮不等待间隔，立即执行
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan struct{}, 1)
	go RunLoop(ctx, time.Hour, func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("首轮采集未立即执行")
	}
}
