package pipeline

import (
	"context"
	"fmt"

	"datumsync/bmi"
	"datumsync/internal/config"
	"datumsync/internal/logging"
	"datumsync/internal/runfile"
	"datumsync/sink"
	"datumsync/sink/csvfile"
	"datumsync/sink/stdout"
)

// Runner drives one model instance through the run file's conversion jobs.
type Runner struct {
	model *bmi.DatumSync
	rf    runfile.File
}

// Compile parses a run file, checks the sink it names, and initializes the
// model.
func Compile(path string) (*Runner, error) {
	rf, err := config.LoadRunFile(path)
	if err != nil {
		return nil, err
	}
	if len(rf.Jobs) == 0 {
		return nil, fmt.Errorf("run file %s lists no jobs", path)
	}
	if rf.Sink == "" {
		rf.Sink = "csv"
	}
	if _, err := sink.NewAdapter(rf.Sink); err != nil {
		return nil, err
	}

	model := bmi.NewDatumSync()
	if err := model.Initialize(rf.Config); err != nil {
		return nil, err
	}
	return &Runner{model: model, rf: rf}, nil
}

// Run executes every job in order and finalizes the model on the way out.
func (r *Runner) Run(ctx context.Context) error {
	defer func() {
		if err := r.model.Finalize(); err != nil {
			logging.L().Error("finalize model", "err", err)
		}
	}()
	for _, job := range r.rf.Jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.runJob(job); err != nil {
			return fmt.Errorf("job %s: %w", job.Input, err)
		}
	}
	return nil
}

/*──────── job execution ───────*/

func (r *Runner) runJob(job runfile.Job) error {
	frame, err := ReadFrame(job.Input)
	if err != nil {
		return err
	}
	n := len(frame.Lon)
	if n == 0 {
		return fmt.Errorf("%s: no coordinate rows", job.Input)
	}

	vars := r.model.Config().Variables
	if err := r.model.SetValue(vars.X, frame.Lon); err != nil {
		return err
	}
	if err := r.model.SetValue(vars.Y, frame.Lat); err != nil {
		return err
	}
	// Elevation from the previous job must not leak into this one.
	zvals := frame.Elev
	if !frame.HasZ() {
		zvals = nil
	}
	if err := r.model.SetValue(vars.Z, zvals); err != nil {
		return err
	}

	if err := r.model.Update(); err != nil {
		return err
	}
	out, err := r.model.ValueRef(vars.Output)
	if err != nil {
		return err
	}

	drv, err := sink.NewAdapter(r.rf.Sink)
	if err != nil {
		return err
	}
	switch r.rf.Sink {
	case "csv":
		cols := []string{frame.LonCol, frame.LatCol}
		if frame.HasZ() {
			cols = append(cols, frame.ElevCol)
		}
		err = drv.Configure(csvfile.Config{Path: job.Output, Columns: cols})
	case "stdout":
		err = drv.Configure(stdout.Config{})
	default:
		err = fmt.Errorf("no config block for sink %q", r.rf.Sink)
	}
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		rec := sink.Record{Longitude: out[i], Latitude: out[n+i], HasZ: frame.HasZ()}
		if rec.HasZ {
			rec.Elevation = out[2*n+i]
		}
		if err := drv.Push(rec); err != nil {
			_ = drv.Close()
			return err
		}
	}
	if err := drv.Close(); err != nil {
		return err
	}
	logging.L().Info("converted", "input", job.Input, "output", job.Output,
		"points", n, "z_changed", r.model.LastZChanged())
	return nil
}
