package datemath

import "regexp"

// DateLayout is the layout of resolved dates.
const DateLayout = "2006-01-02"

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
