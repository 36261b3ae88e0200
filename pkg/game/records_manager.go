package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Records 跨局保存的成绩记录
type Records struct {
	BestScore   int       `yaml:"bestScore"`   // 历史最高分
	GamesPlayed int       `yaml:"gamesPlayed"` // 已结束的局数
	UpdatedAt   time.Time `yaml:"updatedAt"`   // 最后一次写入时间
}

// RecordsManager 成绩记录管理器
// 负责最高分的加载、更新和持久化
type RecordsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	records      *Records
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "local"
)

// NewRecordsManager 创建新的成绩记录管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存记录）
//
// 返回：
//   - *RecordsManager: 记录管理器实例
func NewRecordsManager(gdataManager *gdata.Manager) *RecordsManager {
	rm := &RecordsManager{
		gdataManager: gdataManager,
		records:      &Records{},
	}

	// 加载失败不是致命错误，从零开始记录
	if err := rm.Load(); err != nil {
		log.Printf("[RecordsManager] Warning: Failed to load records: %v (starting fresh)", err)
	}

	return rm
}

// Load 从 gdata 加载记录
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (rm *RecordsManager) Load() error {
	if rm.gdataManager == nil {
		return nil
	}

	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded Records
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}

	rm.records = &loaded
	log.Printf("[RecordsManager] Records loaded (best=%d)", loaded.BestScore)
	return nil
}

// Save 保存记录到 gdata
// gdataManager 为 nil 时直接返回 nil
func (rm *RecordsManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	return nil
}

// Submit 提交一局结束时的得分
//
// 更新局数与最高分并立即持久化。
//
// 参数：
//   - score: 本局得分
//
// 返回：
//   - bool: 是否刷新了最高分
//   - error: 持久化失败时返回错误（内存中的记录仍已更新）
func (rm *RecordsManager) Submit(score int) (bool, error) {
	rm.records.GamesPlayed++
	rm.records.UpdatedAt = time.Now()

	improved := score > rm.records.BestScore
	if improved {
		rm.records.BestScore = score
	}

	return improved, rm.Save()
}

// BestScore 返回历史最高分
func (rm *RecordsManager) BestScore() int {
	return rm.records.BestScore
}

// GetRecords 返回当前记录
func (rm *RecordsManager) GetRecords() *Records {
	return rm.records
}
