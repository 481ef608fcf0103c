package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	db "github.com/zydnet/CineMystApp-sub002/infrastructure/persistence/database"
	"github.com/zydnet/CineMystApp-sub002/interfaces/api/middleware"
	"github.com/zydnet/CineMystApp-sub002/pkg/app"
	"github.com/zydnet/CineMystApp-sub002/pkg/configs"
	"github.com/zydnet/CineMystApp-sub002/pkg/di"
)

func main() {
	// โหลดไฟล์ .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using existing environment")
	}

	// สร้างการเชื่อมต่อฐานข้อมูล
	database, err := configs.NewDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// ทำ migration ถ้าจำเป็น
	if err := db.SetupDatabase(database.DB); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	// เชื่อมต่อกับ Redis (ไม่บังคับ - ถ้าต่อไม่ได้ระบบข้าม cache)
	var redisClient *redis.Client
	redisConfig := configs.LoadRedisConfig()
	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Host + ":" + redisConfig.Port,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("Redis unavailable, profile cache disabled: %v", err)
	} else {
		redisClient = client
		log.Println("Connected to Redis successfully")
	}

	// สร้าง DI container
	container, err := di.NewContainer(database.DB, redisClient)
	if err != nil {
		log.Fatalf("Failed to build DI container: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	authMiddleware := middleware.NewAuthMiddleware(jwtSecret)

	// ตั้งค่าและสร้าง Fiber App
	fiberApp := app.SetupApp(container, authMiddleware)

	// จัดการการปิดเซิร์ฟเวอร์อย่างสง่างาม
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}

		log.Printf("Server listening on port %s", port)
		if err := fiberApp.Listen(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-c
	log.Println("Shutting down server...")

	if err := fiberApp.Shutdown(); err != nil {
		log.Fatalf("Error shutting down server: %v", err)
	}

	if err := database.Close(); err != nil {
		log.Fatalf("Error closing database connection: %v", err)
	}

	log.Println("Server stopped gracefully")
}
