// Package runlog 提供追加式 JSON Lines 运行日志
// 一次运行写入一行，不做滚动，也不加文件锁（假设单实例运行）
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Append 将一条记录序列化后追加到日志文件，父目录不存在时自动创建
func Append(path string, entry any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create log directory failed: %w", err)
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal log entry failed: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file failed: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log entry failed: %w", err)
	}
	return nil
}
