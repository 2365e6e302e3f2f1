package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"rollcall-roster-go/db"
	"rollcall-roster-go/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// addStudentRequest is the body of POST /api/students
type addStudentRequest struct {
	ID    *int          `json:"id" binding:"required"`
	Name  string        `json:"name"`
	Grade *models.Grade `json:"grade" binding:"required"`
}

// APIHandler holds the dependencies for API handlers, like the roster service
type APIHandler struct {
	RosterService *db.RosterService
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(service *db.RosterService) *APIHandler {
	return &APIHandler{
		RosterService: service,
	}
}

// RegisterRoutes mounts the API and metrics routes on router
func (h *APIHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/students", h.GetAllStudents)
		api.GET("/students/render", h.RenderStudents)
		api.GET("/students/:id", h.GetStudentByID)
		api.POST("/students", h.AddStudent)

		api.POST("/import/students", h.ImportStudents)
		api.GET("/export/students", h.ExportStudents)

		api.GET("/stats", h.GetStats)
		api.GET("/ping", PingHandler)
	}

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.RosterService.Registry, promhttp.HandlerOpts{})))
}

// --- Student Handlers ---

// GetAllStudents handles GET /api/students
func (h *APIHandler) GetAllStudents(c *gin.Context) {
	students := h.RosterService.GetAllStudents()
	if students == nil {
		// Return empty list instead of null for JSON consistency
		c.JSON(http.StatusOK, []models.Student{})
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetStudentByID handles GET /api/students/:id
func (h *APIHandler) GetStudentByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Student ID must be an integer"})
		return
	}

	student := h.RosterService.GetStudentByID(id)
	if student == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, student)
}

// AddStudent handles POST /api/students
func (h *APIHandler) AddStudent(c *gin.Context) {
	var req addStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	newStudent := models.Student{ID: *req.ID, Name: req.Name, Grade: *req.Grade}

	if err := h.RosterService.AddStudent(newStudent); err != nil {
		if errors.Is(err, db.ErrRosterFull) {
			c.JSON(http.StatusConflict, gin.H{"error": "Database is full. Cannot add more students."})
			return
		}
		log.Printf("Error in AddStudent handler: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newStudent.Name = db.TruncateName(newStudent.Name)
	c.JSON(http.StatusCreated, newStudent)
}

// RenderStudents handles GET /api/students/render
func (h *APIHandler) RenderStudents(c *gin.Context) {
	c.String(http.StatusOK, "%s", h.RosterService.Render())
}

// GetStats handles GET /api/stats
func (h *APIHandler) GetStats(c *gin.Context) {
	count, capacity := h.RosterService.Stats()
	c.JSON(http.StatusOK, gin.H{"count": count, "capacity": capacity})
}

// --- Import / Export Handlers ---

// ImportStudents handles POST /api/import/students
func (h *APIHandler) ImportStudents(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		log.Printf("Error getting form file: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error retrieving uploaded file: " + err.Error()})
		return
	}
	defer file.Close()

	log.Printf("Received file upload: %s", header.Filename)

	importedCount, err := h.RosterService.ImportStudentsFromExcel(file)
	if err != nil {
		log.Printf("Error importing students from file %s: %v", header.Filename, err)
		if errors.Is(err, db.ErrRosterFull) {
			c.JSON(http.StatusConflict, gin.H{
				"message":       "Database is full. Import stopped early.",
				"importedCount": importedCount,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to import students: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Import successful",
		"importedCount": importedCount,
	})
}

// ExportStudents handles GET /api/export/students
func (h *APIHandler) ExportStudents(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.RosterService.ExportStudentsToExcel(&buf); err != nil {
		log.Printf("Error exporting students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export students"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="students.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// --- Ping Handler ---
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Pong!"})
}
