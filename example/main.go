package main

import (
	"time"

	"github.com/ericyao2013/boos-core.rev2/alloc"
	"github.com/ericyao2013/boos-core.rev2/list"
	"github.com/ericyao2013/boos-core.rev2/timer"
	"github.com/sirupsen/logrus"
)

type task struct {
	name     string
	priority int
}

func main() {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	heap := alloc.Default()

	// A ready queue ordered by priority.
	ready, err := list.New[task](
		list.WithAllocator(heap),
		list.WithIllegal(task{priority: -1}),
	)
	if err != nil {
		log.WithError(err).Fatal("create ready queue")
	}
	defer ready.Release()

	for _, t := range []task{{"idle", 0}, {"net", 5}, {"disk", 3}, {"shell", 5}} {
		at := ready.Len()
		for i := range ready.Len() {
			if ready.Get(i).priority < t.priority {
				at = i
				break
			}
		}
		if !ready.Insert(at, t) {
			log.WithField("task", t.name).Error("ready queue is full")
		}
	}

	ctrl, err := timer.NewSoftController(2, 1_000_000, timer.WithLogger(log))
	if err != nil {
		log.WithError(err).Fatal("create timer controller")
	}

	tick, err := ctrl.AcquireFree()
	if err != nil {
		log.WithError(err).Fatal("acquire timer")
	}
	defer tick.Release()

	tick.SetPeriod(time.Second.Microseconds())
	tick.Start()

	for !ready.IsEmpty() {
		t := ready.Element()
		if !ready.Remove() {
			log.WithField("task", t.name).Error("dequeue failed")
			break
		}

		log.WithFields(logrus.Fields{
			"task":     t.name,
			"priority": t.priority,
			"count":    tick.Count(),
		}).Info("run")

		time.Sleep(10 * time.Millisecond)
	}

	stats := heap.Stats()
	log.WithFields(logrus.Fields{
		"blocks":      stats.Blocks,
		"allocations": stats.Allocations,
	}).Info("done")
}
