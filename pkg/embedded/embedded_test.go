package embedded

import (
	"testing"
	"testing/fstest"
)

func withTestFS(t *testing.T) {
	t.Helper()
	prevFS, prevInit := dataFS, initialized
	t.Cleanup(func() {
		dataFS, initialized = prevFS, prevInit
	})

	Init(fstest.MapFS{
		"data/bowshot.yaml": &fstest.MapFile{Data: []byte("canvas:\n  width: 640\n")},
	})
}

// TestReadFileNotInitialized 测试未初始化时返回错误
func TestReadFileNotInitialized(t *testing.T) {
	prevFS, prevInit := dataFS, initialized
	defer func() { dataFS, initialized = prevFS, prevInit }()
	dataFS, initialized = nil, false

	if _, err := ReadFile(DefaultConfigPath); err == nil {
		t.Error("expected error before Init()")
	}
	if Exists(DefaultConfigPath) {
		t.Error("Exists should be false before Init()")
	}
}

// TestReadFile 测试路径标准化与读取
func TestReadFile(t *testing.T) {
	withTestFS(t)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/bowshot.yaml"},
		{name: "带 ./ 前缀", path: "./data/bowshot.yaml"},
		{name: "未知前缀", path: "assets/bowshot.yaml", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
		})
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	withTestFS(t)

	if !Exists(DefaultConfigPath) {
		t.Errorf("Exists(%q) = false, want true", DefaultConfigPath)
	}
	if Exists("data/other.yaml") {
		t.Error("Exists(data/other.yaml) = true, want false")
	}
}
