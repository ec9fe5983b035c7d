package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// PerformanceWindow shows tick timing and per-system statistics.
type PerformanceWindow struct {
	monitor *Monitor
}

func NewPerformanceWindow(monitor *Monitor) *PerformanceWindow {
	return &PerformanceWindow{monitor: monitor}
}

func (pw *PerformanceWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats, storage := pw.monitor.Stats()
	if stats == nil {
		imgui.Text("Waiting for the first tick")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Flush Time: %v", stats.FlushDuration))

	history := pw.monitor.TickHistory()
	if len(history) > 0 {
		var avg float32
		for _, ms := range history {
			avg += ms
		}
		avg /= float32(len(history))

		imgui.Text(fmt.Sprintf("Avg Tick Interval: %.1f ms", avg))
		imgui.Separator()
		imgui.Text("Tick Interval Graph (ms)")
		imgui.PlotLinesFloatPtr("##ticktime", &history[0], int32(len(history)))
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}

		imgui.EndTable()
	}

	if storage != nil && imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range storage.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}
