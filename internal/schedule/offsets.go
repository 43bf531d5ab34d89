package schedule

// OffsetRule defines one milestone template: a name, a signed day offset from the
// departure date (negative = before D-Day), and the responsible role label.
type OffsetRule struct {
	Name       string
	OffsetDays int
	Owner      string
}

// MilestoneOffsets is the canonical onboarding schedule template. It is fixed at
// compile time and never mutated; generated milestones copy from it, so editing
// the table does not retroactively change existing clients.
var MilestoneOffsets = []OffsetRule{
	{Name: "Business License", OffsetDays: -21, Owner: "Admin"},
	{Name: "Residence Visa Arrived", OffsetDays: -16, Owner: "Admin"},
	{Name: "Airport Greeter + Driver", OffsetDays: -15, Owner: "Coordinator"},
	{Name: "Arrival in UAE", OffsetDays: -12, Owner: "Coordinator"},
	{Name: "Residence Visa Approval", OffsetDays: -11, Owner: "Admin"},
	{Name: "Medical Test", OffsetDays: -11, Owner: "Coordinator"},
	{Name: "Biometrics", OffsetDays: -9, Owner: "Coordinator"},
	{Name: "Emirates ID", OffsetDays: -8, Owner: "Admin"},
	{Name: "UAE SIM", OffsetDays: -8, Owner: "Coordinator"},
	{Name: "Personal Bank Account", OffsetDays: -7, Owner: "Coordinator"},
	{Name: "Personal Debit Card", OffsetDays: -6, Owner: "Coordinator"},
	{Name: "Company Bank/Card Application", OffsetDays: -5, Owner: "Admin"},
	{Name: "Departure", OffsetDays: 0, Owner: "Coordinator"},
}
