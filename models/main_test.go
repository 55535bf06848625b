package models

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"yatube/config"
	"yatube/db"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

// setupTestDB gives every test its own in-memory database
func setupTestDB(t *testing.T) {
	t.Helper()
	config.PASSWORD_COST = bcrypt.MinCost
	config.POSTS_PER_PAGE = 10
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	require.NoError(t, db.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared")))
	require.NoError(t, Init())
	t.Cleanup(db.Close)
}

// setupConcurrentDB opens a database file shared by several connections, so transactions overlap
func setupConcurrentDB(t *testing.T, maxConns int) {
	t.Helper()
	config.PASSWORD_COST = bcrypt.MinCost
	dsn := filepath.Join(t.TempDir(), "yatube.db") + "?_busy_timeout=10000&_txlock=immediate"
	require.NoError(t, db.Open(sqlite.Open(dsn)))
	sqlDB, err := db.Instance.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(maxConns)
	require.NoError(t, Init())
	t.Cleanup(db.Close)
}

// concurrently runs fn from n goroutines at once and returns their errors
func concurrently(n int, fn func() error) []error {
	var wg sync.WaitGroup
	start := make(chan struct{})
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = fn()
		}()
	}
	close(start)
	wg.Wait()
	return errs
}

func createUser(t *testing.T, username string) User {
	t.Helper()
	u, err := UserCreate(username, username+"@example.com", "secret-password")
	require.NoError(t, err)
	return u
}

func createGroup(t *testing.T, slug string) Group {
	t.Helper()
	g, err := GroupCreate("Group "+slug, slug, "About "+slug)
	require.NoError(t, err)
	return g
}

func createPost(t *testing.T, author User, group *Group, text string) Post {
	t.Helper()
	p := Post{AuthorID: author.ID, Text: text}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, PostCreate(&p))
	return p
}

func postIDs(posts []Post) []uint64 {
	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}
