package routes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRouteScheduleRunsOn(t *testing.T) {
	rs := &RouteSchedule{DaysOfWeek: "MON,WED,FRI"}

	assert.True(t, rs.RunsOn(time.Monday))
	assert.True(t, rs.RunsOn(time.Wednesday))
	assert.True(t, rs.RunsOn(time.Friday))
	assert.False(t, rs.RunsOn(time.Tuesday))
	assert.False(t, rs.RunsOn(time.Saturday))
	assert.False(t, rs.RunsOn(time.Sunday))
}

func TestRouteScheduleRunsOnEveryDay(t *testing.T) {
	rs := &RouteSchedule{DaysOfWeek: "MON,TUE,WED,THU,FRI,SAT,SUN"}
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.True(t, rs.RunsOn(d), "expected to run on %s", d)
	}
}

func TestRouteScheduleRunsOnEmpty(t *testing.T) {
	rs := &RouteSchedule{DaysOfWeek: ""}
	assert.False(t, rs.RunsOn(time.Monday))
}
