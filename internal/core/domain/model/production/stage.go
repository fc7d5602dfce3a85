package production

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Stage identifies the area of the facility a work order or station belongs
// to. Work orders start in the production area; the same values type station
// kinds.
type Stage string

const (
	StageProduction Stage = "PRODUCTION"
	StagePacking    Stage = "PACKING"
	StageShipping   Stage = "SHIPPING"
)

// Validate checks if the stage is one of the defined values.
func (s Stage) Validate() error {
	switch s {
	case StageProduction, StagePacking, StageShipping:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a valid stage", string(s)))
	}
}

// String returns the wire form of the stage.
func (s Stage) String() string {
	return string(s)
}
