package solve

// default option values.
const (
	defaultMaxSteps    = 5000
	defaultSmooth      = true
	defaultLogInterval = 100
)

// PlannerOptions configures a single solve: how many steps to budget and
// whether to run the post-solve smoothing pass. Exported, json-tagged
// fields so a problem description can be loaded straight off disk.
type PlannerOptions struct {
	// MaxSteps bounds the number of OneStep calls FinishSolve will drive
	// before giving up with ErrNoPath.
	MaxSteps int `json:"max_steps"`

	// Smooth gates the simpleSmooth redundant-waypoint elision pass over
	// the extracted result path.
	Smooth bool `json:"smooth"`

	// LogInterval is the number of steps between progress debug logs.
	LogInterval int `json:"logging_interval"`
}

// NewBasicPlannerOptions returns the default PlannerOptions.
func NewBasicPlannerOptions() *PlannerOptions {
	return &PlannerOptions{
		MaxSteps:    defaultMaxSteps,
		Smooth:      defaultSmooth,
		LogInterval: defaultLogInterval,
	}
}
