package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ikkim/ft-backend/config"
	"github.com/ikkim/ft-backend/internal/db"
	"github.com/ikkim/ft-backend/pkg/logger"
)

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path> [--yes]")
	}

	filePath := os.Args[1]
	assumeYes := len(os.Args) > 2 && os.Args[2] == "--yes"

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      "console",
		EnableColor: true,
	})

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, skipped, err := readCatalogFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Items to import: %d (skipped rows: %d)\n", len(rows), skipped)
	if len(rows) == 0 {
		return
	}

	// 사용자 확인
	if !assumeYes {
		fmt.Print("Do you want to proceed with the import? (yes/no): ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Println("Import cancelled.")
			return
		}
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	imported, err := importCatalog(db.GetDB(), rows, newItemService)
	if err != nil {
		log.Fatalf("Import stopped after %d items: %v", imported, err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total items imported: %d\n", imported)
}
