package fatigue

// ShiftDefinition is one duty period as supplied by the caller. Optional
// fields are pointers; nil means "use the global parameter, else the fallback".
type ShiftDefinition struct {
	Day            int    `json:"day" yaml:"day"`
	StartTime      string `json:"start_time" yaml:"start_time"`
	EndTime        string `json:"end_time" yaml:"end_time"`
	CommuteIn      *int   `json:"commute_in,omitempty" yaml:"commute_in,omitempty"`
	CommuteOut     *int   `json:"commute_out,omitempty" yaml:"commute_out,omitempty"`
	Workload       *int   `json:"workload,omitempty" yaml:"workload,omitempty"`
	Attention      *int   `json:"attention,omitempty" yaml:"attention,omitempty"`
	BreakFrequency *int   `json:"break_frequency,omitempty" yaml:"break_frequency,omitempty"`
	BreakLength    *int   `json:"break_length,omitempty" yaml:"break_length,omitempty"`
}

// FatigueParameters holds pattern-wide defaults. All durations are minutes.
type FatigueParameters struct {
	CommuteTime          *int `json:"commute_time,omitempty" yaml:"commute_time,omitempty"`
	Workload             *int `json:"workload,omitempty" yaml:"workload,omitempty"`
	Attention            *int `json:"attention,omitempty" yaml:"attention,omitempty"`
	BreakFrequency       *int `json:"break_frequency,omitempty" yaml:"break_frequency,omitempty"`
	BreakLength          *int `json:"break_length,omitempty" yaml:"break_length,omitempty"`
	ContinuousWork       *int `json:"continuous_work,omitempty" yaml:"continuous_work,omitempty"`
	BreakAfterContinuous *int `json:"break_after_continuous,omitempty" yaml:"break_after_continuous,omitempty"`
}

// Fallbacks used when neither the shift nor the global parameters set a field.
const (
	FallbackCommuteTime          = 60
	FallbackWorkload             = 2
	FallbackAttention            = 2
	FallbackBreakFrequency       = 180
	FallbackBreakLength          = 30
	FallbackContinuousWork       = 240
	FallbackBreakAfterContinuous = 30
)

// Bounds of the workload and attention demand scales.
const (
	MinDemand = 1
	MaxDemand = 5
)

// Int returns a pointer to v, for filling optional fields.
func Int(v int) *int {
	return &v
}

// Clone returns a deep copy so callers' pointers are never shared.
func (p *FatigueParameters) Clone() *FatigueParameters {
	if p == nil {
		return nil
	}
	return &FatigueParameters{
		CommuteTime:          clonePtr(p.CommuteTime),
		Workload:             clonePtr(p.Workload),
		Attention:            clonePtr(p.Attention),
		BreakFrequency:       clonePtr(p.BreakFrequency),
		BreakLength:          clonePtr(p.BreakLength),
		ContinuousWork:       clonePtr(p.ContinuousWork),
		BreakAfterContinuous: clonePtr(p.BreakAfterContinuous),
	}
}

// Clone returns a deep copy of the shift.
func (s ShiftDefinition) Clone() ShiftDefinition {
	s.CommuteIn = clonePtr(s.CommuteIn)
	s.CommuteOut = clonePtr(s.CommuteOut)
	s.Workload = clonePtr(s.Workload)
	s.Attention = clonePtr(s.Attention)
	s.BreakFrequency = clonePtr(s.BreakFrequency)
	s.BreakLength = clonePtr(s.BreakLength)
	return s
}

func clonePtr(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// global reads one field from possibly-nil parameters.
func global(p *FatigueParameters, field func(*FatigueParameters) *int) *int {
	if p == nil {
		return nil
	}
	return field(p)
}

// resolve applies the three-tier precedence: shift value, then global
// parameter, then the fixed fallback.
func resolve(shift, globalValue *int, fallback int) int {
	if shift != nil {
		return *shift
	}
	if globalValue != nil {
		return *globalValue
	}
	return fallback
}

// commuteTotal is the pattern-wide total commute used by the split rule.
func commuteTotal(p *FatigueParameters) int {
	return resolve(nil, global(p, func(p *FatigueParameters) *int { return p.CommuteTime }), FallbackCommuteTime)
}

// ResolveCommuteIn returns the shift's inbound commute, or the lower half
// of the total commute time when the shift leaves it unset.
func ResolveCommuteIn(s ShiftDefinition, p *FatigueParameters) int {
	if s.CommuteIn != nil {
		return *s.CommuteIn
	}
	return commuteTotal(p) / 2
}

// ResolveCommuteOut returns the shift's outbound commute, or the upper half
// of the total commute time, so an odd total puts the extra minute here.
func ResolveCommuteOut(s ShiftDefinition, p *FatigueParameters) int {
	if s.CommuteOut != nil {
		return *s.CommuteOut
	}
	total := commuteTotal(p)
	return total - total/2
}

// ResolveWorkload returns the workload rating for s.
func ResolveWorkload(s ShiftDefinition, p *FatigueParameters) int {
	return resolve(s.Workload, global(p, func(p *FatigueParameters) *int { return p.Workload }), FallbackWorkload)
}

// ResolveAttention returns the attention rating for s.
func ResolveAttention(s ShiftDefinition, p *FatigueParameters) int {
	return resolve(s.Attention, global(p, func(p *FatigueParameters) *int { return p.Attention }), FallbackAttention)
}

// ResolveBreakFrequency returns the minutes between breaks for s.
func ResolveBreakFrequency(s ShiftDefinition, p *FatigueParameters) int {
	return resolve(s.BreakFrequency, global(p, func(p *FatigueParameters) *int { return p.BreakFrequency }), FallbackBreakFrequency)
}

// ResolveBreakLength returns the break length in minutes for s.
func ResolveBreakLength(s ShiftDefinition, p *FatigueParameters) int {
	return resolve(s.BreakLength, global(p, func(p *FatigueParameters) *int { return p.BreakLength }), FallbackBreakLength)
}

// ResolveContinuousWork returns the continuous work limit in minutes. It is
// set pattern-wide only.
func ResolveContinuousWork(p *FatigueParameters) int {
	return resolve(nil, global(p, func(p *FatigueParameters) *int { return p.ContinuousWork }), FallbackContinuousWork)
}

// ResolveBreakAfterContinuous returns the break required after continuous
// work, in minutes. It is set pattern-wide only.
func ResolveBreakAfterContinuous(p *FatigueParameters) int {
	return resolve(nil, global(p, func(p *FatigueParameters) *int { return p.BreakAfterContinuous }), FallbackBreakAfterContinuous)
}
