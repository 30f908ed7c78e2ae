package entities

// BoundaryState is the state of a BoundarySearch.
type BoundaryState int

const (
	// Scanning walks tags newest to oldest while support holds.
	Scanning BoundaryState = iota
	// CheckingDefaultBranch waits for the default branch answer after the newest tag lacked support.
	CheckingDefaultBranch
	// FoundBoundaryAtNewest means only the unreleased default branch declares support.
	FoundBoundaryAtNewest
	// FoundBoundaryMidTimeline means support was lost at an older tag; the newer neighbour wins.
	FoundBoundaryMidTimeline
	// ExhaustedAllSupported means every tag declares support; the oldest tag wins.
	ExhaustedAllSupported
	// NoSupportFound means neither a tag nor the default branch declares support.
	NoSupportFound
	// ScanningDroppedSupport walks older tags after neither the newest tag nor the default
	// branch declared support.
	ScanningDroppedSupport
	// FoundDroppedSupport means support was dropped; the newest tag still declaring it wins.
	FoundDroppedSupport
)

func (s BoundaryState) String() string {
	switch s {
	case Scanning:
		return "Scanning"
	case CheckingDefaultBranch:
		return "CheckingDefaultBranch"
	case FoundBoundaryAtNewest:
		return "FoundBoundaryAtNewest"
	case FoundBoundaryMidTimeline:
		return "FoundBoundaryMidTimeline"
	case ExhaustedAllSupported:
		return "ExhaustedAllSupported"
	case NoSupportFound:
		return "NoSupportFound"
	case ScanningDroppedSupport:
		return "ScanningDroppedSupport"
	case FoundDroppedSupport:
		return "FoundDroppedSupport"
	default:
		return "Unknown"
	}
}

// BoundarySearch finds the oldest tag of the newest contiguous run of supporting tags.
// It performs no I/O: the caller asks for the next revision to check and feeds back the
// outcome until Done returns true.
//
// The walk stops at the first tag lacking support, so a history that gains, loses, and regains
// support reports the most recent gain only. When the newest tag and the default branch both
// lack support, older tags are walked for the newest one that still declares it.
type BoundarySearch struct {
	descTags      []string
	defaultBranch string
	pos           int
	lastConfirmed string
	state         BoundaryState
}

// NewBoundarySearch starts a search over tags given in ascending version order.
func NewBoundarySearch(ascTags []string, defaultBranch string) *BoundarySearch {
	desc := make([]string, len(ascTags))
	for i, tag := range ascTags {
		desc[len(ascTags)-1-i] = tag
	}
	s := &BoundarySearch{descTags: desc, defaultBranch: defaultBranch}
	if len(desc) == 0 {
		s.state = NoSupportFound
	}
	return s
}

// State returns the current state.
func (s *BoundarySearch) State() BoundaryState { return s.state }

// Done returns true once the search reached a terminal state.
func (s *BoundarySearch) Done() bool {
	switch s.state {
	case Scanning, CheckingDefaultBranch, ScanningDroppedSupport:
		return false
	default:
		return true
	}
}

// Next returns the revision the caller must check next.
func (s *BoundarySearch) Next() (string, bool) {
	switch s.state {
	case Scanning, ScanningDroppedSupport:
		return s.descTags[s.pos], true
	case CheckingDefaultBranch:
		return s.defaultBranch, true
	default:
		return "", false
	}
}

// Observe records whether the revision returned by Next declares support.
func (s *BoundarySearch) Observe(supported bool) {
	switch s.state {
	case Scanning:
		s.observeTag(supported)
	case CheckingDefaultBranch:
		s.observeDefaultBranch(supported)
	case ScanningDroppedSupport:
		s.observeDroppedTag(supported)
	}
}

func (s *BoundarySearch) observeDefaultBranch(supported bool) {
	switch {
	case supported:
		s.state = FoundBoundaryAtNewest
	case len(s.descTags) > 1:
		s.pos = 1
		s.state = ScanningDroppedSupport
	default:
		s.state = NoSupportFound
	}
}

func (s *BoundarySearch) observeDroppedTag(supported bool) {
	if supported {
		s.lastConfirmed = s.descTags[s.pos]
		s.state = FoundDroppedSupport
		return
	}
	s.pos++
	if s.pos == len(s.descTags) {
		s.state = NoSupportFound
	}
}

func (s *BoundarySearch) observeTag(supported bool) {
	if supported {
		s.lastConfirmed = s.descTags[s.pos]
		s.pos++
		if s.pos == len(s.descTags) {
			s.state = ExhaustedAllSupported
		}
		return
	}
	if s.pos == 0 {
		s.state = CheckingDefaultBranch
		return
	}
	s.state = FoundBoundaryMidTimeline
}

// Result returns the outcome of a finished search, or NoSupport while still running.
func (s *BoundarySearch) Result() SupportResult {
	switch s.state {
	case FoundBoundaryAtNewest:
		return BranchSupport(s.defaultBranch)
	case FoundBoundaryMidTimeline, ExhaustedAllSupported, FoundDroppedSupport:
		return TagSupport(s.lastConfirmed)
	default:
		return NoSupport()
	}
}
