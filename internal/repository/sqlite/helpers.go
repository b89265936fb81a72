package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// specColumns is the SELECT column list for record queries. Column order
// must match specRow.scanArgs exactly.
const specColumns = `part_number, family, core, flash_kb, ram_kb, data`

// specRow holds all columns from a record query for scanning
type specRow struct {
	PartNumber string
	Family     string
	Core       string
	FlashKB    int
	RAMKB      int
	Data       []byte
}

func (r *specRow) scanArgs() []interface{} {
	return []interface{}{
		&r.PartNumber,
		&r.Family,
		&r.Core,
		&r.FlashKB,
		&r.RAMKB,
		&r.Data,
	}
}

// toDomain converts the scanned row to a domain.MCUSpec. The indexed
// columns are the source of truth and override whatever the JSON blob says.
func (r *specRow) toDomain() (*domain.MCUSpec, error) {
	spec := &domain.MCUSpec{}
	if err := json.Unmarshal(r.Data, spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record data: %w", err)
	}

	spec.PartNumber = r.PartNumber
	spec.Family = r.Family
	spec.Core = domain.Core(r.Core)
	spec.FlashSizeKB = r.FlashKB
	spec.RAMSizeKB = r.RAMKB

	return spec, nil
}
