package ports

import (
	"context"
	"time"

	"github.com/BurtMcGurt64/owlplanner/internal/domain"
)

// SchedulerAPI is the remote scheduling service as the application sees it.
// Implementations translate every transport failure into the api error
// taxonomy before it crosses this boundary.
type SchedulerAPI interface {
	// RequestSchedules issues exactly one schedule-generation call.
	RequestSchedules(ctx context.Context, courses domain.CourseQuery, prefs domain.PreferenceSet) (domain.ScheduleResult, error)

	// Ping reports whether the service answered a health check within the
	// given timeout. It never returns an error; failure to answer is false.
	Ping(ctx context.Context, timeout time.Duration) bool

	// ListCourses fetches the course catalog names in server order.
	ListCourses(ctx context.Context) ([]string, error)
}
