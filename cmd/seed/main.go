package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/foodiespot/foodiespot-backend/config"
	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"github.com/foodiespot/foodiespot-backend/internal/app/repository"
	"github.com/foodiespot/foodiespot-backend/internal/db"
	"github.com/foodiespot/foodiespot-backend/pkg/util"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Imports shops from an XLSX export. Expected columns:
// owner_email | shop_name | description | location | image_url
//
// An owner account is created for each new owner_email with a random
// unusable password; handing the account over to the real owner is a
// manual step for the operator.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := repository.NewUserRepository(db.GetDB())
	shopRepo := repository.NewShopRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readShopRows(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total shops to import: %d\n", len(rows))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	var shops []model.Shop
	skipped := 0

	for _, row := range rows {
		owner, err := findOrCreateOwner(userRepo, row.ownerEmail)
		if err != nil {
			fmt.Printf("Skipping %q: %v\n", row.shopName, err)
			skipped++
			continue
		}

		shops = append(shops, model.Shop{
			OwnerID:     owner.ID,
			Name:        row.shopName,
			Description: row.description,
			Location:    row.location,
			ImageURL:    row.imageURL,
		})
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := shopRepo.BulkCreate(shops, batchSize); err != nil {
		log.Fatal("Failed to bulk create shops:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total shops imported: %d (skipped: %d)\n", len(shops), skipped)
}

type shopRow struct {
	ownerEmail  string
	shopName    string
	description string
	location    string
	imageURL    string
}

func readShopRows(filePath string) ([]shopRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var result []shopRow
	seen := make(map[string]bool)
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 2 {
			skipped++
			continue
		}

		r := shopRow{
			ownerEmail: strings.ToLower(strings.TrimSpace(row[0])),
			shopName:   strings.TrimSpace(row[1]),
		}
		if len(row) > 2 {
			r.description = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			r.location = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			r.imageURL = strings.TrimSpace(row[4])
		}

		if r.ownerEmail == "" || r.shopName == "" || !strings.Contains(r.ownerEmail, "@") {
			skipped++
			continue
		}

		// One shop per owner, so duplicate owner emails are skipped
		if seen[r.ownerEmail] {
			skipped++
			continue
		}
		seen[r.ownerEmail] = true

		result = append(result, r)
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid shops: %d\n", len(result))
	fmt.Printf("  Skipped rows: %d\n", skipped)

	return result, nil
}

func findOrCreateOwner(userRepo repository.UserRepository, email string) (*model.User, error) {
	existing, err := userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}
	if existing != nil {
		if existing.Role != model.RoleShopOwner {
			return nil, fmt.Errorf("user %s exists but is not a shop owner", email)
		}
		return existing, nil
	}

	// Random password nobody knows, so the account cannot be signed into
	hash, err := util.HashPassword(uuid.New().String())
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	owner := &model.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.Split(email, "@")[0],
		Role:         model.RoleShopOwner,
	}
	if err := userRepo.Create(owner); err != nil {
		return nil, fmt.Errorf("failed to create owner account: %w", err)
	}

	return owner, nil
}
