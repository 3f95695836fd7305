package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskgraph-sim/tasksim/internal/engine"
)

func TestClockOrdersByTimeThenInsertion(t *testing.T) {
	chk := require.New(t)
	clock := engine.NewClock()

	var order []string
	clock.Schedule(5, func(now engine.Time) { order = append(order, "a@5") })
	clock.Schedule(1, func(now engine.Time) { order = append(order, "b@1") })
	clock.Schedule(1, func(now engine.Time) { order = append(order, "c@1") })
	clock.Schedule(0, func(now engine.Time) { order = append(order, "d@0") })

	clock.Run()

	chk.Equal([]string{"d@0", "b@1", "c@1", "a@5"}, order)
	chk.Equal(engine.Time(5), clock.Now())
	chk.False(clock.Pending())
}

func TestClockRunIsEmptyWhenNothingScheduled(t *testing.T) {
	chk := require.New(t)
	clock := engine.NewClock()
	clock.Run()
	chk.Equal(engine.Time(0), clock.Now())
}

func TestClockCallbackMayScheduleMoreEvents(t *testing.T) {
	chk := require.New(t)
	clock := engine.NewClock()

	var order []int
	clock.Schedule(0, func(now engine.Time) {
		order = append(order, 1)
		clock.Schedule(0, func(now engine.Time) {
			order = append(order, 3)
		})
		order = append(order, 2)
	})

	clock.Run()
	chk.Equal([]int{1, 2, 3}, order)
}

func TestClockRejectsNegativeDelay(t *testing.T) {
	chk := require.New(t)
	clock := engine.NewClock()
	chk.Panics(func() {
		clock.Schedule(-1, func(engine.Time) {})
	})
}
