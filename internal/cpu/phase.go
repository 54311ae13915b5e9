package cpu

// Phase is the multi-cycle state carried inside an in-flight instruction
// value. Single-cycle instructions never look past First; instructions
// that span more machine cycles advance through Second, Third, and so on
// as their Execute method returns themselves with phase advanced.
type Phase int

const (
	First Phase = iota
	Second
	Third
	Fourth
	Fifth
)
