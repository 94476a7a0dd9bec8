package service

import (
	"fmt"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
)

// ApplyValueMaps rewrites record keys through the per-axis maps. An empty map
// leaves its axis untouched. The input blocks are not modified.
func ApplyValueMaps(blocks []entity.ResultBlock, group1, group2 entity.ValueMap) ([]entity.ResultBlock, error) {
	maps := [2]entity.ValueMap{group1, group2}
	if len(group1) == 0 && len(group2) == 0 {
		return blocks, nil
	}

	mapped := make([]entity.ResultBlock, len(blocks))
	for i, block := range blocks {
		mapped[i] = block
		mapped[i].Records = make([]entity.GroupedCostRecord, len(block.Records))
		for j, record := range block.Records {
			for axis, m := range maps {
				if len(m) == 0 {
					continue
				}
				display, err := m.Lookup(record.Keys[axis])
				if err != nil {
					return nil, fmt.Errorf("period %s: %w", block.PeriodStart, err)
				}
				record.Keys[axis] = display
			}
			mapped[i].Records[j] = record
		}
	}
	return mapped, nil
}

// MapUniverse maps every member of u through m and returns the re-sorted result.
func MapUniverse(u entity.ValueUniverse, m entity.ValueMap) (entity.ValueUniverse, error) {
	if len(m) == 0 {
		return u, nil
	}
	values := make([]string, 0, len(u))
	for _, raw := range u {
		display, err := m.Lookup(raw)
		if err != nil {
			return nil, err
		}
		values = append(values, display)
	}
	return entity.NewValueUniverse(values...), nil
}
