package sysmon

import (
	"context"
	"time"
)

// RunLoop 以固定间隔循环执行 run，直到 ctx 被取消
// 每轮结束后休眠固定时长，不做漂移补偿：一轮超时只会让下一轮顺延
func RunLoop(ctx context.Context, interval time.Duration, run func()) {
	for {
		run()

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
