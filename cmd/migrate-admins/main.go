package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/expostands/expostands-api/internal/database"
	"github.com/expostands/expostands-api/internal/models"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var driver string
	flag.StringVar(&driver, "driver", "mysql", "database driver (mysql, postgres, sqlite, sqlserver)")
	var sourceDSN string
	flag.StringVar(&sourceDSN, "from", "", "source database DSN")
	var targetDSN string
	flag.StringVar(&targetDSN, "to", "", "target database DSN")
	flag.Parse()

	usage := `
Copy admin users from a source database to a target database. Rows whose
external_id already exists in the target are skipped.

Usage:

migrate-admins [-h] -driver DRIVER -from SOURCE_DSN -to TARGET_DSN

example
  migrate-admins -driver mysql -from "user:pass@tcp(old:3306)/site" -to "user:pass@tcp(new:3306)/site"
`
	if showHelp || sourceDSN == "" || targetDSN == "" {
		fmt.Println(usage)
		if !showHelp {
			os.Exit(1)
		}
		return
	}

	source, err := database.OpenDSN(driver, sourceDSN)
	if err != nil {
		log.Fatalf("Failed to connect to source database: %v", err)
	}
	defer database.Close(source)

	target, err := database.OpenDSN(driver, targetDSN)
	if err != nil {
		log.Fatalf("Failed to connect to target database: %v", err)
	}
	defer database.Close(target)

	if err := target.AutoMigrate(&models.AdminUser{}); err != nil {
		log.Fatalf("Failed to migrate target schema: %v", err)
	}

	var users []models.AdminUser
	if err := source.Order("created_at").Find(&users).Error; err != nil {
		log.Fatalf("Failed to read source admin users: %v", err)
	}

	copied, skipped, failed := 0, 0, 0
	for _, user := range users {
		var existing models.AdminUser
		err := target.Where("external_id = ?", user.ExternalID).First(&existing).Error
		if err == nil {
			log.Printf("admin %s (%s): already exists, skipping", user.ExternalID, user.Email)
			skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("admin %s: lookup failed: %v", user.ExternalID, err)
			failed++
			continue
		}

		// Keep the source row identity so sessions keyed on the ID survive.
		if err := target.Create(&user).Error; err != nil {
			log.Printf("admin %s: copy failed: %v", user.ExternalID, err)
			failed++
			continue
		}
		log.Printf("admin %s (%s): copied", user.ExternalID, user.Email)
		copied++
	}

	log.Printf("done: %d copied, %d skipped, %d failed", copied, skipped, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
