package render

import (
	"fmt"
	"navigation-service/internal/domain"
	"strings"
	"time"
)

// FormatResult renders the navigation result as the plain-text report
// shown to the user.
func FormatResult(r *domain.NavigationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Current Position: %s\n", r.Current)
	fmt.Fprintf(&b, "Target Position: %s\n", r.Target)
	fmt.Fprintf(&b, "Distance: %.2f meters", r.DistanceMeters)
	if r.DistanceMethod != "" {
		fmt.Fprintf(&b, " (%s)", r.DistanceMethod)
	}
	b.WriteString("\n")

	if r.DurationSeconds > 0 {
		fmt.Fprintf(&b, "Travel Time: %s\n", time.Duration(r.DurationSeconds)*time.Second)
	}
	if r.BearingDegrees != nil {
		fmt.Fprintf(&b, "Initial Bearing: %.2f degrees\n", *r.BearingDegrees)
	}

	fmt.Fprintf(&b, "Jacobian Matrix:\n%s\n", r.Jacobian)
	fmt.Fprintf(&b, "End Effector Position: %s\n", r.EndEffector)
	fmt.Fprintf(&b, "Manipulability: %.6f", r.Manipulability)
	if r.Singular {
		b.WriteString(" (singular configuration)")
	}

	return b.String()
}
