package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/bigattichouse/taguchi"
	"github.com/bigattichouse/taguchi/analysis"
	"github.com/bigattichouse/taguchi/design"
)

// ============================================================
// DATA GENERATION & VERIFICATION
// ============================================================

func generateData(size int, pattern string) []int {
	data := make([]int, size)
	switch pattern {
	case "random":
		for i := range data {
			data[i] = rand.Intn(1_000_000)
		}
	case "sorted":
		for i := range data {
			data[i] = i
		}
	case "reverse_sorted":
		for i := range data {
			data[i] = size - i
		}
	case "many_duplicates":
		for i := range data {
			data[i] = rand.Intn(100)
		}
	case "nearly_sorted":
		for i := range data {
			data[i] = i
		}
		for i := 0; i < size/10; i++ {
			a := rand.Intn(size)
			b := rand.Intn(size)
			data[a], data[b] = data[b], data[a]
		}
	}
	return data
}

func isSorted(arr []int) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i] < arr[i-1] {
			return false
		}
	}
	return true
}

// ============================================================
// MAIN EXPERIMENT
//
// Measures wall-clock sort duration across a parallel sort algorithm,
// its worker count, and the input's data pattern, then reports which
// combination of levels minimizes duration.
// ============================================================

func main() {
	def, err := taguchi.NewExperimentDefinition([]taguchi.Factor{
		{Name: "algorithm", Levels: []string{"quicksort", "radixsort"}},
		{Name: "max_workers", Levels: []string{"6", "9", "15", "20"}},
		{Name: "data_pattern", Levels: []string{"random", "sorted", "reverse_sorted", "many_duplicates", "nearly_sorted"}},
	}, "")
	if err != nil {
		panic(err)
	}

	runs, arrayName, err := design.GenerateRuns(def, "")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Using array %s, %d trials\n", arrayName, len(runs))

	const dataSize = 2_000_000
	patterns := []string{"random", "sorted", "reverse_sorted", "many_duplicates", "nearly_sorted"}
	datasets := map[string][]int{}
	for _, p := range patterns {
		datasets[p] = generateData(dataSize, p)
	}

	rs := taguchi.NewResultSet(def, "duration_us", arrayName)

	for _, run := range runs {
		algorithm, _ := run.Level("algorithm")
		workersStr, _ := run.Level("max_workers")
		pattern, _ := run.Level("data_pattern")
		workers, _ := strconv.Atoi(workersStr)

		data := make([]int, dataSize)
		copy(data, datasets[pattern])

		start := time.Now()
		fmt.Println("Running run:", run.RunID, "algorithm:", algorithm, "workers:", workers, "pattern:", pattern)
		if algorithm == "quicksort" {
			ParallelQuickSort(data, workers)
		} else {
			ParallelRadixSort(data, workers)
		}
		dur := time.Since(start)

		if !isSorted(data) {
			panic("sorting failed")
		}

		rs.Add(run.RunID, float64(dur.Microseconds()))
		fmt.Printf("run %d | %s | workers=%d | %s | %v\n", run.RunID, algorithm, workers, pattern, dur)
	}

	effects, err := analysis.CalculateMainEffects(rs)
	if err != nil {
		panic(err)
	}

	fmt.Println("\nMain effects (duration_us):")
	for _, e := range effects {
		fmt.Printf("  %s: means=%v range=%g\n", e.Factor, e.LevelMeans, e.Range)
	}

	// Duration is smaller-the-better, so higherIsBetter=false.
	fmt.Println("Recommendation:", analysis.Recommend(effects, false))
}
