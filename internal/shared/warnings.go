package shared

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// WarningType represents different types of warnings
type WarningType int

const (
	FilenameParseWarning WarningType = iota
	MissingCoverWarning
	CoverLoadWarning
	MissingYearWarning
	MixedSchemeWarning
	BPMEstimateWarning
	TagWriteWarning
)

// Warning represents a single warning with context
type Warning struct {
	Type    WarningType
	Message string
	Context string // File/directory context
	Details string // Additional details like error message
}

// WarningCollector collects warnings during a tagging run.
// Safe for concurrent use; worker goroutines add warnings while tagging.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []Warning
	enabled  bool
}

// NewWarningCollector creates a new warning collector
func NewWarningCollector(enabled bool) *WarningCollector {
	return &WarningCollector{
		warnings: make([]Warning, 0),
		enabled:  enabled,
	}
}

// AddWarning adds a warning to the collector
func (wc *WarningCollector) AddWarning(warningType WarningType, context, message, details string) {
	if !wc.enabled {
		return
	}

	warning := Warning{
		Type:    warningType,
		Message: message,
		Context: context,
		Details: details,
	}
	wc.mu.Lock()
	wc.warnings = append(wc.warnings, warning)
	wc.mu.Unlock()
}

// AddFilenameParseWarning records a filename the parser could not handle
func (wc *WarningCollector) AddFilenameParseWarning(path, details string) {
	wc.AddWarning(FilenameParseWarning, path, "Could not parse filename", details)
}

// AddMissingCoverWarning records a directory without a Cover.jpg
func (wc *WarningCollector) AddMissingCoverWarning(dir string) {
	wc.AddWarning(MissingCoverWarning, dir, "No Cover.jpg in directory", "")
}

// AddCoverLoadWarning records a Cover.jpg that exists but could not be used
func (wc *WarningCollector) AddCoverLoadWarning(dir, details string) {
	wc.AddWarning(CoverLoadWarning, dir, "Could not load cover art", details)
}

// AddMissingYearWarning records a directory whose name carries no year
func (wc *WarningCollector) AddMissingYearWarning(dir, fallback string) {
	wc.AddWarning(MissingYearWarning, dir, "Could not extract year from directory name", fmt.Sprintf("using %s", fallback))
}

// AddMixedSchemeWarning records a directory mixing album and compilation naming
func (wc *WarningCollector) AddMixedSchemeWarning(dir string) {
	wc.AddWarning(MixedSchemeWarning, dir, "Directory mixes album and compilation naming schemes", "")
}

// AddBPMEstimateWarning records a failed tempo estimate
func (wc *WarningCollector) AddBPMEstimateWarning(path, details string) {
	wc.AddWarning(BPMEstimateWarning, path, "Could not estimate BPM", details)
}

// AddTagWriteWarning records a failed tag write
func (wc *WarningCollector) AddTagWriteWarning(path, details string) {
	wc.AddWarning(TagWriteWarning, path, "Failed to write tags", details)
}

// HasWarnings returns true if there are any warnings
func (wc *WarningCollector) HasWarnings() bool {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return len(wc.warnings) > 0
}

// GetWarningCount returns the total number of warnings
func (wc *WarningCollector) GetWarningCount() int {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return len(wc.warnings)
}

// GetWarningsByType returns warnings grouped by type
func (wc *WarningCollector) GetWarningsByType() map[WarningType][]Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	grouped := make(map[WarningType][]Warning)
	for _, warning := range wc.warnings {
		grouped[warning.Type] = append(grouped[warning.Type], warning)
	}
	return grouped
}

// PrintSummary prints a formatted summary of all warnings
func (wc *WarningCollector) PrintSummary() {
	count := wc.GetWarningCount()
	if count == 0 {
		return
	}

	ColorWarning.Printf("\n⚠️  Warning Summary (%d warnings):\n", count)
	ColorWarning.Println(strings.Repeat("─", 50))

	grouped := wc.GetWarningsByType()

	// Sort warning types for consistent output
	var types []WarningType
	for warningType := range grouped {
		types = append(types, warningType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, warningType := range types {
		wc.printWarningTypeSection(warningType, grouped[warningType])
	}
}

// printWarningTypeSection prints warnings for a specific type
func (wc *WarningCollector) printWarningTypeSection(warningType WarningType, warnings []Warning) {
	if len(warnings) == 0 {
		return
	}

	sectionTitle := wc.getWarningTypeTitle(warningType)
	ColorWarning.Printf("\n%s (%d):\n", sectionTitle, len(warnings))

	// Group similar warnings to avoid repetition
	contextCounts := make(map[string]int)
	for _, warning := range warnings {
		contextCounts[warning.Context]++
	}

	var contexts []string
	for context := range contextCounts {
		contexts = append(contexts, context)
	}
	sort.Strings(contexts)

	for _, context := range contexts {
		count := contextCounts[context]
		if count > 1 {
			ColorWarning.Printf("  • %s (×%d)\n", context, count)
		} else {
			ColorWarning.Printf("  • %s\n", context)
		}
	}
}

// getWarningTypeTitle returns a human-readable title for a warning type
func (wc *WarningCollector) getWarningTypeTitle(warningType WarningType) string {
	switch warningType {
	case FilenameParseWarning:
		return "Unparseable Filenames"
	case MissingCoverWarning:
		return "Directories Without Cover Art"
	case CoverLoadWarning:
		return "Unusable Cover Art"
	case MissingYearWarning:
		return "Directories Without Year Information"
	case MixedSchemeWarning:
		return "Mixed Naming Schemes"
	case BPMEstimateWarning:
		return "BPM Estimation Failures"
	case TagWriteWarning:
		return "Tag Write Failures"
	default:
		return "Other Warnings"
	}
}
