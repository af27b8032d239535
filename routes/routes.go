package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/polytechlab/attendgate/config"
	"github.com/polytechlab/attendgate/handlers"
	"github.com/polytechlab/attendgate/middlewares"
	"github.com/polytechlab/attendgate/repository"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, st *repository.Stores, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(st, cfg.JWTSecret)
	ref := handlers.NewReferenceHandler(st)
	chk := handlers.NewCheckHandler(st, cfg)
	sch := handlers.NewScheduleHandler(st)
	sub := handlers.NewSubjectHandler(st)
	rep := handlers.NewReportHandler(st)
	abs := handlers.NewAbsenceHandler(st)
	cam := handlers.NewCameraHandler(st)

	e.GET("/healthz", handlers.Health)

	// ===== Public Auth =====
	e.POST("/auth/staff/login", auth.StaffLogin)

	// ===== Scans =====
	e.POST("/checks", chk.Create)
	e.POST("/api/checks", chk.Create)
	e.POST("/api/checks/by-name", chk.CreateByName)
	e.POST("/api/camera-logs", cam.Create)

	// ===== Reference reads =====
	e.GET("/periods", ref.Periods)
	e.GET("/departments", ref.Departments)
	e.GET("/terms", ref.Terms)
	e.GET("/rooms", ref.Rooms)
	e.GET("/students", ref.Students)
	e.GET("/subjects", sub.List)

	// ===== Schedule =====
	e.GET("/schedule/plan", sch.Plan)
	e.GET("/schedule/weekly", sch.Weekly)
	e.GET("/schedule/monthly", sch.Monthly)
	e.GET("/schedule/monthly.csv", sch.MonthlyCSV)
	e.GET("/schedule/day", sch.Day)

	// ===== Reports =====
	e.GET("/reports/subject-rates", rep.SubjectRates)
	e.GET("/reports/subject-roster", rep.SubjectRoster)
	e.GET("/reports/summary", rep.Summary)

	// ===== Absence reasons =====
	e.GET("/absences", abs.List)
	e.POST("/absences", abs.Save)

	// ===== Protected groups =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	staff := e.Group("", authMW, middlewares.RequireRole("staff", "admin"))
	staff.GET("/logs/checks", chk.Recent)
	staff.GET("/logs/checks.csv", chk.ExportCSV)
	staff.GET("/logs/camera", cam.Recent)

	staff.PUT("/schedule/special", sch.UpsertSpecial)
	staff.DELETE("/schedule/special", sch.DeleteSpecial)

	staff.POST("/subjects", sub.Create)
	staff.PUT("/subjects/:id", sub.Update)
	staff.DELETE("/subjects/:id", sub.Delete)

	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))
	admin.DELETE("/checks", chk.Reset)
	admin.DELETE("/camera-logs", cam.Reset)
}
