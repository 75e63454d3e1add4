package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Pattern is a reusable 7-day duty template: one row per person, one column
// per day of the cycle. Cells hold 0 for OFF or a shift code.
type Pattern struct {
	BaseModel
	Name          string         `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description   string         `json:"description" gorm:"type:text"`
	PersonilCount int            `json:"personil_count" gorm:"not null;index;uniqueIndex:idx_patterns_default_per_count,priority:1,where:is_default = true" validate:"required,min=1"`
	PatternData   datatypes.JSON `json:"pattern_data" gorm:"type:jsonb;not null"`
	IsDefault     bool           `json:"is_default" gorm:"not null;default:false;uniqueIndex:idx_patterns_default_per_count,priority:2,where:is_default = true"`
	UsageCount    int            `json:"usage_count" gorm:"not null;default:0"`
	LastUsedAt    *time.Time     `json:"last_used_at,omitempty"`
}

// TableName returns the table name for Pattern
func (Pattern) TableName() string {
	return "patterns"
}

// Grid decodes the stored pattern data.
func (p *Pattern) Grid() ([][]int, error) {
	var grid [][]int
	if len(p.PatternData) == 0 {
		return grid, nil
	}
	if err := json.Unmarshal(p.PatternData, &grid); err != nil {
		return nil, fmt.Errorf("decode pattern data: %w", err)
	}
	return grid, nil
}

// SetGrid encodes grid into the pattern data column.
func (p *Pattern) SetGrid(grid [][]int) error {
	raw, err := json.Marshal(grid)
	if err != nil {
		return fmt.Errorf("encode pattern data: %w", err)
	}
	p.PatternData = datatypes.JSON(raw)
	return nil
}
