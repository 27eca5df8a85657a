package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mental-lab/opswatch/internal/config"
	"github.com/mental-lab/opswatch/internal/runlog"
	"github.com/mental-lab/opswatch/internal/sysmon"
	"github.com/mental-lab/opswatch/pkg/agent"
	svcmgr "github.com/mental-lab/opswatch/pkg/agent/service"
	"github.com/mental-lab/opswatch/pkg/agent/sysutil"
)

// 系统服务注册信息
const (
	serviceName        = "opswatch-sysmon"
	serviceDisplayName = "Opswatch System Monitor"
	serviceDescription = "采集主机指标并在超过阈值时告警"
)

func main() {
	exitCode := 0

	rootCmd := newRootCmd(&exitCode)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func newRootCmd(exitCode *int) *cobra.Command {
	cfg := config.DefaultSysmonConfig()
	logLevel := "info"

	cmd := &cobra.Command{
		Use:           "sysmon",
		Short:         "系统监控代理",
		Long:          "采集内存、磁盘、负载、网络连通性和服务状态，超过静态阈值时输出警告。",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			agent.InitLogger(&agent.LogConfig{Level: logLevel})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Daemon {
				runDaemon(cfg)
				return nil
			}
			*exitCode = runOnce(cfg, sysmon.NewCollector(), sysmon.NewPusher(cfg.MonitoringEndpoint))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.Output, "output", cfg.Output, "输出格式 (json|human)")
	flags.StringVar(&cfg.LogFile, "log-file", "", "运行日志文件路径（JSON Lines）")
	flags.BoolVar(&cfg.Daemon, "daemon", false, "以守护进程模式循环运行")
	flags.IntVar(&cfg.Interval, "interval", cfg.Interval, "守护进程模式的采集间隔（秒）")
	flags.Float64Var(&cfg.LoadThreshold, "load-threshold", cfg.LoadThreshold, "1 分钟负载告警阈值")
	flags.StringVar(&logLevel, "log-level", logLevel, "诊断日志级别")

	cmd.AddCommand(newServiceCmd(cfg))

	return cmd
}

// runOnce 执行一次采集、评估、输出、记录，返回进程退出码
func runOnce(cfg *config.SysmonConfig, collector *sysmon.Collector, pusher *sysmon.Pusher) int {
	snapshot := collector.Collect()
	warnings := sysmon.CheckThresholds(snapshot, cfg.LoadThreshold, collector.Services)

	if cfg.Output == "json" {
		if err := sysmon.PrintJSON(os.Stdout, snapshot, warnings); err != nil {
			slog.Warn("输出 JSON 报告失败", "error", err)
		}
	} else {
		sysmon.PrintHuman(os.Stdout, snapshot, warnings, collector.Services)
	}

	if cfg.LogFile != "" {
		if err := runlog.Append(cfg.LogFile, sysmon.LogEntry(snapshot, warnings)); err != nil {
			fmt.Printf("Warning: Could not write to log file: %v\n", err)
		}
	}

	if pusher.Endpoint == "" {
		slog.Debug("未配置指标上报端点")
	} else if err := pusher.Push(snapshot); err != nil {
		fmt.Printf("Warning: Could not push metrics: %v\n", err)
	}

	if len(warnings) > 0 {
		return 1
	}
	return 0
}

// runDaemon 以固定间隔循环采集，收到中断信号后退出
func runDaemon(cfg *config.SysmonConfig) {
	fmt.Printf("Starting system monitor daemon (interval: %ds)\n", cfg.Interval)
	configureICMP()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	daemonLoop(ctx, cfg)

	fmt.Println("\nDaemon stopped")
}

// daemonLoop 守护循环本体，也作为系统服务的负载
func daemonLoop(ctx context.Context, cfg *config.SysmonConfig) {
	collector := sysmon.NewCollector()
	pusher := sysmon.NewPusher(cfg.MonitoringEndpoint)

	sysmon.RunLoop(ctx, time.Duration(cfg.Interval)*time.Second, func() {
		runOnce(cfg, collector, pusher)
	})
}

// configureICMP 配置非特权 ICMP 权限，失败时仅提示
func configureICMP() {
	if err := sysutil.ConfigureICMPPermissions(); err != nil {
		slog.Warn("配置 ICMP 权限失败", "error", err)
		slog.Info("提示: ICMP 探测可能需要 root 权限运行，或手动执行: sudo sysctl -w net.ipv4.ping_group_range=\"0 2147483647\"")
	}
}

// newServiceCmd 系统服务管理子命令
func newServiceCmd(cfg *config.SysmonConfig) *cobra.Command {
	serviceCmd := &cobra.Command{
		Use:   "service",
		Short: "管理系统服务（install/uninstall/start/stop/status/run）",
	}

	newManager := func() (*svcmgr.Manager, error) {
		args := []string{
			"service", "run",
			"--interval", strconv.Itoa(cfg.Interval),
			"--load-threshold", strconv.FormatFloat(cfg.LoadThreshold, 'f', -1, 64),
		}
		if cfg.LogFile != "" {
			args = append(args, "--log-file", cfg.LogFile)
		}

		return svcmgr.NewManager(serviceName, serviceDisplayName, serviceDescription, args, func(ctx context.Context) {
			configureICMP()
			daemonLoop(ctx, cfg)
		})
	}

	managerAction := func(action func(*svcmgr.Manager) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			return action(m)
		}
	}

	serviceCmd.AddCommand(
		&cobra.Command{Use: "install", Short: "安装系统服务", RunE: managerAction((*svcmgr.Manager).Install)},
		&cobra.Command{Use: "uninstall", Short: "卸载系统服务", RunE: managerAction((*svcmgr.Manager).Uninstall)},
		&cobra.Command{Use: "start", Short: "启动系统服务", RunE: managerAction((*svcmgr.Manager).Start)},
		&cobra.Command{Use: "stop", Short: "停止系统服务", RunE: managerAction((*svcmgr.Manager).Stop)},
		&cobra.Command{Use: "status", Short: "查询服务状态", RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			status, err := m.Status()
			if err != nil {
				return err
			}
			fmt.Println(status)
			return nil
		}},
		&cobra.Command{Use: "run", Short: "以服务方式运行（由 service manager 调用）", RunE: managerAction((*svcmgr.Manager).Run)},
	)

	return serviceCmd
}
