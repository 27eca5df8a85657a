package sysutil

import (
	"context"
	"os/exec"
)

// Runner 外部命令执行接口，便于在测试中替换
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner 基于 os/exec 的默认实现，返回合并后的标准输出和标准错误
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
