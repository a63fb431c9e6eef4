package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// ReadinessLevel is the qualitative tier derived from the overall percentage.
	ReadinessLevel string

	// OrgSize is the normalized organization size of a session.
	OrgSize string

	// CSFFunction is a NIST Cybersecurity Framework function.
	CSFFunction string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// All readiness levels, best first.
const (
	ExcellentLevel ReadinessLevel = "Excellent"
	GoodLevel      ReadinessLevel = "Good"
	ModerateLevel  ReadinessLevel = "Moderate"
	PoorLevel      ReadinessLevel = "Poor"
	CriticalLevel  ReadinessLevel = "Critical"
)

// All organization sizes supported.
const (
	SmallOrg      OrgSize = "small"
	MediumOrg     OrgSize = "medium"
	LargeOrg      OrgSize = "large"
	EnterpriseOrg OrgSize = "enterprise"
)

// All NIST CSF functions.
const (
	IdentifyFunction CSFFunction = "IDENTIFY"
	ProtectFunction  CSFFunction = "PROTECT"
	DetectFunction   CSFFunction = "DETECT"
	RespondFunction  CSFFunction = "RESPOND"
	RecoverFunction  CSFFunction = "RECOVER"
)

// Option value bounds and shape of every question.
const (
	MinOptionValue     = 0
	MaxOptionValue     = 4
	OptionsPerQuestion = 5
)

// Export envelope versions.
const (
	ToolVersion   = "2.0"
	FormatVersion = "1.0"
)

// LevelThreshold maps a minimum overall percentage to a readiness level.
type LevelThreshold struct {
	Min   float64
	Level ReadinessLevel
}

// LevelThresholds must stay in descending order: the first entry whose
// minimum is met wins.
var LevelThresholds = []LevelThreshold{
	{Min: 85, Level: ExcellentLevel},
	{Min: 70, Level: GoodLevel},
	{Min: 55, Level: ModerateLevel},
	{Min: 40, Level: PoorLevel},
	{Min: 0, Level: CriticalLevel},
}

// AllCSFFunctions is the display order of the NIST CSF functions.
var AllCSFFunctions = []CSFFunction{IdentifyFunction, ProtectFunction, DetectFunction, RespondFunction, RecoverFunction}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// OutputExtensions lists the file extension each output mode writes.
var OutputExtensions = map[OutputMode]string{
	TextOut:    ".txt",
	JSONOut:    ".json",
	CSVOut:     ".csv",
	ParquetOut: ".parquet",
}
