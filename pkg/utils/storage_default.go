//go:build !android

package utils

// EnsureStorageDir 确保成绩存储目录存在（非 Android 平台的空实现）
// gdata 在桌面平台上会自动创建应用目录
func EnsureStorageDir(appName string) error {
	return nil
}
