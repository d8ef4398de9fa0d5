package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hsquare-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hsquare_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

func floatPtr(v float64) *float64 { return &v }

// SeedDatabase ensures a default admin plus a demo hotel and hostel whose
// room rates sit on both sides of the tax tier threshold, so a fresh
// instance exercises every invoice branch.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: "admin@hsquare.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var propertyCount int64
	DB.Model(&models.Property{}).Count(&propertyCount)
	if propertyCount > 0 {
		log.Println("Properties already seeded")
		return
	}

	properties := []models.Property{
		{
			Name:         "Hsquare Suites Andheri",
			Location:     "Juhu Galli, Andheri West",
			Area:         "Andheri West",
			City:         "Mumbai",
			State:        "Maharashtra",
			Country:      "India",
			PropertyType: models.PropertyHotel,
			Rooms: []models.Room{
				{
					Name:         "Deluxe King",
					HourlyRate:   floatPtr(900),
					DailyRate:    floatPtr(6500),
					MonthlyRate:  floatPtr(95000),
					Discount:     floatPtr(10),
					MaxOccupancy: 2,
				},
				{
					Name:         "Standard Queen",
					HourlyRate:   floatPtr(500),
					DailyRate:    floatPtr(3200),
					MonthlyRate:  floatPtr(55000),
					MaxOccupancy: 2,
				},
			},
		},
		{
			Name:         "Hsquare Backpackers Bandra",
			Location:     "Hill Road, Bandra West",
			Area:         "Bandra West",
			City:         "Mumbai",
			State:        "Maharashtra",
			Country:      "India",
			PropertyType: models.PropertyHostel,
			Rooms: []models.Room{
				{
					Name:         "6-Bed Mixed Dorm",
					DailyRate:    floatPtr(800),
					MonthlyRate:  floatPtr(9500),
					YearlyRate:   floatPtr(95000),
					MaxOccupancy: 6,
				},
				{
					Name:         "4-Bed Female Dorm",
					DailyRate:    floatPtr(950),
					MonthlyRate:  floatPtr(11000),
					Discount:     floatPtr(5),
					MaxOccupancy: 4,
				},
			},
		},
	}
	if err := DB.Create(&properties).Error; err != nil {
		log.Printf("warning: failed to seed properties: %v", err)
	} else {
		log.Println("Demo properties seeded")
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.HsUser{},
		&models.Property{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
