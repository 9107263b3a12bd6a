// Package seed provides database seeding utilities for development and demos.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"friendly/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// DemoPassword is the shared password for every seeded account.
const DemoPassword = "Friendly!Pass123"

// demoUsernames are the accounts every fresh install gets, so the feed is
// recognizable across environments.
var demoUsernames = []string{"axelsormen", "kvammy", "sthams", "adinah", "baifanz"}

var captions = []string{
	"Golden hour never disappoints.",
	"Weekend trip to the mountains!",
	"Coffee first, everything else later.",
	"New personal best at the gym today.",
	"This city keeps surprising me.",
	"Homemade pasta night.",
	"Caught the sunrise for once.",
	"Throwback to last summer.",
	"My desk setup is finally done.",
	"Best concert I've been to in years.",
}

var commentTexts = []string{
	"Love this!",
	"Amazing shot.",
	"Where is this?",
	"Goals.",
	"Haha, classic.",
	"Adding this to my list.",
	"Incredible colors.",
	"Wish I was there!",
}

// IsEmpty reports whether the users table has no rows. The server uses this
// to decide on automatic development seeding.
func IsEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// Seed populates the database with demo data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users available", len(users))

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createCommentsAndLikes(db, users, posts); err != nil {
		return fmt.Errorf("failed to create comments and likes: %w", err)
	}

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)

	// The named demo accounts are created idempotently so repeated seeding
	// never duplicates them.
	for _, username := range demoUsernames {
		var user models.User
		err := db.Where(models.User{UserName: username}).
			Attrs(models.User{
				FirstName:       gofakeit.FirstName(),
				LastName:        gofakeit.LastName(),
				Email:           fmt.Sprintf("%s@example.com", username),
				PhoneNumber:     gofakeit.Phone(),
				ProfileImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
				EmailConfirmed:  true,
				PasswordHash:    string(hashedPassword),
			}).
			FirstOrCreate(&user).Error
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	for i := len(users); i < count; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		username := strings.ToLower(fmt.Sprintf("%s_%s%d", first, last, i))

		user := models.User{
			UserName:        username,
			FirstName:       first,
			LastName:        last,
			Email:           fmt.Sprintf("%s@example.com", username),
			PhoneNumber:     gofakeit.Phone(),
			ProfileImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
			PasswordHash:    string(hashedPassword),
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", username, err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func createPosts(db *gorm.DB, users []models.User, count int) ([]models.Post, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]models.Post, 0, count)

	for i := 0; i < count; i++ {
		user := users[r.Intn(len(users))]

		post := models.Post{
			Caption:       captions[r.Intn(len(captions))],
			PostImagePath: fmt.Sprintf("/uploads/demo/%d.jpg", r.Intn(10000)),
			PostDate:      time.Now().Add(-time.Duration(r.Intn(30*24)) * time.Hour),
			UserID:        user.ID,
		}

		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	return posts, nil
}

func createCommentsAndLikes(db *gorm.DB, users []models.User, posts []models.Post) error {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	comments := 0
	likes := 0
	for _, post := range posts {
		for i := 0; i < r.Intn(4); i++ {
			user := users[r.Intn(len(users))]
			comment := models.Comment{
				CommentText: commentTexts[r.Intn(len(commentTexts))],
				CommentDate: post.PostDate.Add(time.Duration(r.Intn(24)) * time.Hour),
				PostID:      post.PostID,
				UserID:      user.ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
			comments++
		}

		// At most one like per (post, user): walk a shuffled user slice
		// instead of sampling with replacement.
		perm := r.Perm(len(users))
		for _, idx := range perm[:r.Intn(len(users)+1)] {
			like := models.Like{PostID: post.PostID, UserID: users[idx].ID}
			if err := db.Create(&like).Error; err != nil {
				return err
			}
			likes++
		}
	}

	log.Printf("✓ %d comments and %d likes created", comments, likes)
	return nil
}
