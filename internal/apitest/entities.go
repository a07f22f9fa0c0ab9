package apitest

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/urepair/console/internal/model"
)

func (s *Server) listEquipment(c *gin.Context) {
	s.mu.Lock()
	items := make([]model.Equipment, 0, len(s.equipment))
	for _, e := range s.equipment {
		items = append(items, e)
	}
	s.mu.Unlock()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	c.JSON(http.StatusOK, model.EquipmentTable{Equipment: items})
}

func (s *Server) createEquipment(c *gin.Context) {
	var equipment model.Equipment
	if err := c.ShouldBindJSON(&equipment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	equipment.ID = s.nextID
	s.nextID++
	s.equipment[equipment.ID] = equipment
	s.mu.Unlock()
	c.JSON(http.StatusOK, equipment)
}

func (s *Server) getEquipment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	s.mu.Lock()
	equipment, ok := s.equipment[id]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("equipment %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (s *Server) updateEquipment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var equipment model.Equipment
	if err := c.ShouldBindJSON(&equipment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	equipment.ID = id
	s.mu.Lock()
	_, ok := s.equipment[id]
	if ok {
		s.equipment[id] = equipment
	}
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("equipment %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (s *Server) deleteEquipment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	s.mu.Lock()
	delete(s.equipment, id)
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

// Equipment returns the stored equipment by id.
func (s *Server) Equipment(id int) (model.Equipment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	equipment, ok := s.equipment[id]
	return equipment, ok
}

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.Unlock()
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	c.JSON(http.StatusOK, model.UserTable{Users: users})
}

func (s *Server) createUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	s.users[user.Email] = user
	s.mu.Unlock()
	c.JSON(http.StatusOK, user)
}

func (s *Server) getUser(c *gin.Context) {
	email := c.Param("email")
	s.mu.Lock()
	user, ok := s.users[email]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("user %s not found", email)})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateUser(c *gin.Context) {
	email := c.Param("email")
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	_, ok := s.users[email]
	if ok {
		delete(s.users, email)
		s.users[user.Email] = user
	}
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("user %s not found", email)})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) deleteUser(c *gin.Context) {
	email := c.Param("email")
	s.mu.Lock()
	delete(s.users, email)
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

// User returns the stored user by email.
func (s *Server) User(email string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	return user, ok
}

// UserCount returns the number of stored users.
func (s *Server) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
