package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"

	"rmsched/internal/rta"
)

func main() {
	// .env is optional; explicit flags win over environment defaults
	_ = godotenv.Load()

	var (
		systemText = flag.String("s", "", `inline task system, e.g. "(1,5,5),(1,7,7)"`)
		taskFile   = flag.String("f", os.Getenv("RMSCHED_TASKSET"), "YAML task-set file")
		configPath = flag.String("c", os.Getenv("RMSCHED_CONFIG"), "engine config file")
		tracePath  = flag.String("trace", "", "write the simulation trace as CSV")
	)
	flag.Parse()

	cfg := rta.Load(*configPath)

	sys, err := buildSystem(*systemText, *taskFile, cfg)
	if err != nil {
		color.Error.Println(err)
		os.Exit(1)
	}

	fmt.Printf("rmsched analysis %s\n\n", uuid.New())
	report(sys)

	if *tracePath != "" {
		if err := writeTrace(sys, *tracePath); err != nil {
			color.Error.Println(err)
			os.Exit(1)
		}
		fmt.Printf("\ntrace written to %s\n", *tracePath)
	}
}

func buildSystem(text, path string, cfg rta.Config) (*rta.System, error) {
	if path != "" {
		specs, err := rta.LoadTaskSet(path)
		if err != nil {
			return nil, err
		}
		return rta.NewSystemFromTasks(specs, cfg), nil
	}
	return rta.NewSystem(text, cfg)
}

func report(sys *rta.System) {
	tasks := sys.Tasks()
	fmt.Printf("tasks: %d\n", len(tasks))
	for _, t := range tasks {
		fmt.Printf("  task %-2d C=%-6g T=%-6g D=%-6g U=%.2f\n",
			t.ID, t.Execution, t.Period, t.Deadline, t.Utilization)
	}
	if len(tasks) == 0 {
		return
	}

	fmt.Printf("\ntotal utilization: %g\n", sys.TotalUtilization())
	if h, err := sys.Hyperperiod(); err == nil {
		fmt.Printf("hyperperiod:       %g\n", h)
	}

	liu, _ := sys.LiuBound()
	liuOK, _ := sys.SchedulableByLiu()
	fmt.Printf("liu bound:         %.4f  %s\n", liu, verdict(liuOK))

	bini, _ := sys.BiniBound()
	biniOK, _ := sys.SchedulableByBini()
	fmt.Printf("bini bound:        %.2f  %s\n", bini, verdict(biniOK))

	fmt.Println("\nresponse times:")
	for i, r := range sys.ResponseTimes() {
		if r == rta.NotSchedulable {
			fmt.Printf("  task %-2d %s\n", tasks[i].ID, color.Red.Render("no fixed point"))
			continue
		}
		fmt.Printf("  task %-2d R=%g\n", tasks[i].ID, r)
	}
	fmt.Printf("exact RM test:     %s\n", verdict(sys.SchedulableByResponseTime()))

	if slot, err := sys.FirstFreeSlot(); err == nil {
		fmt.Printf("first free slot:   %g\n", slot)
	} else {
		fmt.Printf("first free slot:   %s\n", color.Red.Render(err.Error()))
	}

	fmt.Println("slack:")
	for i, sl := range sys.Slack() {
		fmt.Printf("  task %-2d S=%g\n", tasks[i].ID, sl)
	}

	if sch, err := sys.Schedule(); err == nil {
		fmt.Printf("\nexecution order over %d cells:\n  %s\n", sch.Horizon, formatOrder(sch.Order))
	}
}

func verdict(ok bool) string {
	if ok {
		return color.Green.Render("PASS")
	}
	return color.Red.Render("FAIL")
}

// formatOrder keeps long hyperperiods readable on a terminal.
func formatOrder(order []rta.TaskID) string {
	const limit = 100
	out := ""
	for i, id := range order {
		if i == limit {
			return fmt.Sprintf("%s... (%d more)", out, len(order)-limit)
		}
		if i > 0 {
			out += " "
		}
		out += fmt.Sprint(id)
	}
	return out
}

func writeTrace(sys *rta.System, path string) error {
	sch, err := sys.Schedule()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return sch.WriteCSV(f)
}
