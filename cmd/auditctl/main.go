// Command auditctl exports the indexer's event log to a Parquet file with
// a BLAKE3 checksum, for offline archival or delivery to a compliance
// reviewer.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"tokencore/indexer"
	"tokencore/observability/logging"
	"tokencore/tools/audit"
)

func main() {
	driver := flag.String("driver", "sqlite", "Indexer database driver: sqlite or postgres")
	dsn := flag.String("dsn", "./tokencore-data/index.db", "Indexer database DSN")
	out := flag.String("out", "./tokencore-data/events.parquet", "Output Parquet path")
	flag.Parse()

	logger := logging.Setup("auditctl", "")

	db, err := indexer.Open(indexer.Driver(*driver), *dsn)
	if err != nil {
		logger.Error("open indexer", "error", err.Error())
		os.Exit(1)
	}

	var records []indexer.EventRecord
	if err := db.Order("id asc").Find(&records).Error; err != nil {
		logger.Error("read event log", "error", err.Error())
		os.Exit(1)
	}

	result, err := audit.ExportEvents(records, *out)
	if err != nil {
		logger.Error("export events", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("auditctl: export complete",
		slog.String("path", result.Path),
		slog.Int("rows", result.RowCount),
		slog.String("checksum", result.Checksum),
	)
	fmt.Printf("wrote %d rows to %s (blake3 %s)\n", result.RowCount, result.Path, result.Checksum)
}
