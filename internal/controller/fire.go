package controller

import (
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/sbudget/internal/logging"
	"github.com/theirongolddev/sbudget/internal/model"
)

// FIREController mutates the FIRE projection inputs.
type FIREController struct {
	s *Session
}

// SetParameter clamps raw into the parameter's range, rounds it to the
// parameter's precision, stores it and returns the stored value.
func (c *FIREController) SetParameter(key model.ParamKey, raw float64) (float64, error) {
	spec, ok := model.SpecFor(key)
	if !ok {
		return 0, ErrUnknownParam
	}

	v := spec.Clamp(raw)
	c.s.fire.Set(key, v)
	c.s.log.WithFields(logrus.Fields{
		logging.FieldParam: string(key),
		logging.FieldValue: v,
	}).Debug("FIRE parameter set")

	return v, c.s.commitFIRE("set-param")
}

// SetParameterInput parses text the way the numeric input does: blank or
// unreadable input counts as zero before clamping.
func (c *FIREController) SetParameterInput(key model.ParamKey, input string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	// Out-of-range input parses to ±Inf and clamps to a bound.
	if err != nil && !math.IsInf(v, 0) {
		v = 0
	}
	return c.SetParameter(key, v)
}

// Step nudges a parameter by its step size, like moving a slider one notch.
// direction is negative to decrease and positive to increase.
func (c *FIREController) Step(key model.ParamKey, direction int) (float64, error) {
	spec, ok := model.SpecFor(key)
	if !ok {
		return 0, ErrUnknownParam
	}
	cur, _ := c.s.fire.Get(key)

	switch {
	case direction > 0:
		cur += spec.Step
	case direction < 0:
		cur -= spec.Step
	}
	return c.SetParameter(key, cur)
}

// ResetToDefaults restores every FIRE parameter once the user confirms.
func (c *FIREController) ResetToDefaults() (bool, error) {
	if !c.s.prompt.Confirm(ConfirmResetFIRE) {
		return false, nil
	}

	c.s.fire = model.DefaultFIREParameters()
	return true, c.s.commitFIRE("reset-fire")
}
