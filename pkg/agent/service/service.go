// Package service 封装系统服务管理，用于把监控代理安装为随系统启动的服务
package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kardianos/service"
)

// program 实现 service.Interface，负载是调用方提供的阻塞运行函数
type program struct {
	run    func(ctx context.Context)
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// Start 启动服务负载，Start 本身不能阻塞
func (p *program) Start(s service.Service) error {
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		p.run(p.ctx)
	}()

	return nil
}

// Stop 取消负载并等待其退出
func (p *program) Stop(s service.Service) error {
	if p.cancel != nil {
		p.cancel()
	}
	if p.done != nil {
		<-p.done
	}
	return nil
}

// Manager 系统服务管理器
type Manager struct {
	svc service.Service
}

// NewManager 创建服务管理器
// args 是服务启动时传给当前可执行文件的参数，run 是服务的实际负载
func NewManager(name, displayName, description string, args []string, run func(ctx context.Context)) (*Manager, error) {
	if _, err := os.Executable(); err != nil {
		return nil, fmt.Errorf("获取可执行文件路径失败: %w", err)
	}

	svcConfig := &service.Config{
		Name:        name,
		DisplayName: displayName,
		Description: description,
		Arguments:   args,
	}

	svc, err := service.New(&program{run: run}, svcConfig)
	if err != nil {
		return nil, fmt.Errorf("创建系统服务失败: %w", err)
	}

	return &Manager{svc: svc}, nil
}

// Install 安装系统服务
func (m *Manager) Install() error {
	if err := m.svc.Install(); err != nil {
		return fmt.Errorf("安装服务失败: %w", err)
	}
	slog.Info("服务安装成功")
	return nil
}

// Uninstall 卸载系统服务
func (m *Manager) Uninstall() error {
	if err := m.svc.Uninstall(); err != nil {
		return fmt.Errorf("卸载服务失败: %w", err)
	}
	slog.Info("服务卸载成功")
	return nil
}

// Start 启动系统服务
func (m *Manager) Start() error {
	if err := m.svc.Start(); err != nil {
		return fmt.Errorf("启动服务失败: %w", err)
	}
	slog.Info("服务已启动")
	return nil
}

// Stop 停止系统服务
func (m *Manager) Stop() error {
	if err := m.svc.Stop(); err != nil {
		return fmt.Errorf("停止服务失败: %w", err)
	}
	slog.Info("服务已停止")
	return nil
}

// Status 查询服务状态
func (m *Manager) Status() (string, error) {
	status, err := m.svc.Status()
	if err != nil {
		return "unknown", err
	}

	switch status {
	case service.StatusRunning:
		return "running", nil
	case service.StatusStopped:
		return "stopped", nil
	default:
		return "unknown", nil
	}
}

// Run 以服务方式运行负载（由 service manager 调用）
func (m *Manager) Run() error {
	return m.svc.Run()
}
