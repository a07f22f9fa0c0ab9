// Package apitest runs an in-memory stand-in for the urepair backend
// so client and service tests exercise real HTTP round trips. It
// reproduces the backend's observable contract: table-wrapped list
// payloads, update-by-POST with full objects, id assignment on
// create, and the two password endpoints.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/urepair/console/internal/model"
)

// Server wraps an httptest.Server over an in-memory record store.
// WriteLog records every non-GET request so tests can assert that a
// rejected action performed no writes. FailDelete marks issue ids
// whose DELETE returns 500, for pinning partial-failure behavior.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	issues     map[int]model.Issue
	equipment  map[int]model.Equipment
	users      map[string]model.User
	nextID     int
	writeLog   []string
	FailDelete map[int]bool
}

func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		issues:     make(map[int]model.Issue),
		equipment:  make(map[int]model.Equipment),
		users:      make(map[string]model.User),
		nextID:     1,
		FailDelete: make(map[int]bool),
	}

	r := gin.New()
	r.Use(s.logWrites)

	r.GET("/issue", s.listIssues)
	r.POST("/issue", s.createIssue)
	r.GET("/issue/:id", s.getIssue)
	r.POST("/issue/:id", s.updateIssue)
	r.DELETE("/issue/:id", s.deleteIssue)

	r.GET("/equipment", s.listEquipment)
	r.POST("/equipment", s.createEquipment)
	r.GET("/equipment/:id", s.getEquipment)
	r.POST("/equipment/:id", s.updateEquipment)
	r.DELETE("/equipment/:id", s.deleteEquipment)

	r.GET("/user", s.listUsers)
	r.POST("/user", s.createUser)
	r.GET("/user/:email", s.getUser)
	r.POST("/user/:email", s.updateUser)
	r.DELETE("/user/:email", s.deleteUser)

	r.POST("/forgot-password", s.forgotPassword)
	r.POST("/reset-password", s.resetPassword)

	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) logWrites(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		s.mu.Lock()
		s.writeLog = append(s.writeLog, c.Request.Method+" "+c.Request.URL.Path)
		s.mu.Unlock()
	}
	c.Next()
}

// Writes returns every non-GET request seen so far.
func (s *Server) Writes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.writeLog...)
}

// AddIssue seeds an issue, assigning an id when the given one is zero.
func (s *Server) AddIssue(issue model.Issue) model.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	if issue.ID == 0 {
		issue.ID = s.nextID
	}
	if issue.ID >= s.nextID {
		s.nextID = issue.ID + 1
	}
	s.issues[issue.ID] = issue
	return issue
}

func (s *Server) AddEquipment(equipment model.Equipment) model.Equipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if equipment.ID == 0 {
		equipment.ID = s.nextID
	}
	if equipment.ID >= s.nextID {
		s.nextID = equipment.ID + 1
	}
	s.equipment[equipment.ID] = equipment
	return equipment
}

func (s *Server) AddUser(user model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = user
	return user
}

// Issue returns the stored issue by id.
func (s *Server) Issue(id int) (model.Issue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	issue, ok := s.issues[id]
	return issue, ok
}

// IssueCount returns the number of stored issues.
func (s *Server) IssueCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.issues)
}

// Issues returns all stored issues ordered by id.
func (s *Server) Issues() []model.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedIssues()
}

func (s *Server) sortedIssues() []model.Issue {
	issues := make([]model.Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		issues = append(issues, issue)
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].ID < issues[j].ID })
	return issues
}

func (s *Server) listIssues(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, model.IssueTable{Issues: s.sortedIssues()})
}

func (s *Server) createIssue(c *gin.Context) {
	var issue model.Issue
	if err := c.ShouldBindJSON(&issue); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	issue.ID = s.nextID
	s.nextID++
	s.issues[issue.ID] = issue
	s.mu.Unlock()
	c.JSON(http.StatusOK, issue)
}

func (s *Server) getIssue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	s.mu.Lock()
	issue, ok := s.issues[id]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("issue %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (s *Server) updateIssue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var issue model.Issue
	if err := c.ShouldBindJSON(&issue); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	issue.ID = id
	s.mu.Lock()
	_, ok := s.issues[id]
	if ok {
		s.issues[id] = issue
	}
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("issue %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (s *Server) deleteIssue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	s.mu.Lock()
	fail := s.FailDelete[id]
	if !fail {
		delete(s.issues, id)
	}
	s.mu.Unlock()
	if fail {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) forgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) resetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Token == "expired" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
