package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jaywantadh/NormaDiff/config"
	"github.com/jaywantadh/NormaDiff/internal/comparator"
	"github.com/jaywantadh/NormaDiff/internal/session"
)

func main() {
	password := "testpass"
	path1 := filepath.Join("samples", "v1.pdf")
	path2 := filepath.Join("samples", "v2.pdf")
	for _, p := range []string{path1, path2} {
		if _, err := os.Stat(p); err != nil {
			fmt.Printf("❌ Sample file not found: %v\n", err)
			return
		}
	}

	config.LoadConfig("./config")

	// Extract and compare
	result, err := comparator.CompareFiles(path1, path2)
	if err != nil {
		fmt.Printf("❌ Comparison failed: %v\n", err)
		return
	}
	fmt.Printf("📄 Compared: %s vs %s\n", path1, path2)
	fmt.Printf("🔍 Differences: %d | Similarity: %.2f%%\n",
		result.Statistics.TotalDifferences, result.SimilarityRatio*100)

	// Round-trip through the encrypted session store
	_ = os.RemoveAll("session_db_manual")
	store, err := session.Open("session_db_manual", time.Hour, password)
	if err != nil {
		fmt.Printf("❌ Session store init failed: %v\n", err)
		return
	}
	defer store.Close()

	id := session.NewID()
	state := &session.State{
		Result:   result,
		Doc1Name: filepath.Base(path1),
		Doc2Name: filepath.Base(path2),
	}
	if err := store.Put(id, state); err != nil {
		fmt.Printf("❌ Store failed: %v\n", err)
		return
	}
	fmt.Printf("💾 Stored comparison under session: %s\n", id)

	loaded, err := store.Get(id)
	if err != nil {
		fmt.Printf("❌ Load failed: %v\n", err)
		return
	}

	if loaded.Result.SimilarityRatio == result.SimilarityRatio &&
		loaded.Result.Statistics.TotalDifferences == result.Statistics.TotalDifferences &&
		len(loaded.Result.Differences) == len(result.Differences) {
		fmt.Println("✅ SUCCESS: Stored comparison matches original")
	} else {
		fmt.Println("❌ MISMATCH: Stored comparison differs from original")
	}
}
