package database

import (
	"gorm.io/gorm"

	"github.com/polytechlab/attendgate/models"
)

// Seed inserts master data on first boot. It is a no-op when the
// periods table already has rows.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Period{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		periods := []models.Period{
			{ID: 1, StartTime: "08:50:00", EndTime: "10:30:00", Note: "1限目"},
			{ID: 2, StartTime: "10:35:00", EndTime: "12:15:00", Note: "2限目"},
			{ID: 3, StartTime: "13:00:00", EndTime: "14:40:00", Note: "3限目"},
			{ID: 4, StartTime: "14:45:00", EndTime: "16:25:00", Note: "4限目"},
			{ID: 5, StartTime: "16:40:00", EndTime: "18:20:00", Note: "5限目"},
		}
		if err := tx.Create(&periods).Error; err != nil {
			return err
		}

		weekdays := []models.Weekday{
			{ID: 0, Name: "授業日"},
			{ID: 1, Name: "月曜日"},
			{ID: 2, Name: "火曜日"},
			{ID: 3, Name: "水曜日"},
			{ID: 4, Name: "木曜日"},
			{ID: 5, Name: "金曜日"},
			{ID: 6, Name: "土曜日"},
			{ID: 7, Name: "日曜日"},
			{ID: 8, Name: "祝祭日"},
		}
		if err := tx.Create(&weekdays).Error; err != nil {
			return err
		}

		terms := []models.Term{
			{ID: 1, Name: "Ⅰ"},
			{ID: 2, Name: "Ⅱ"},
			{ID: 3, Name: "Ⅲ"},
			{ID: 4, Name: "Ⅳ"},
			{ID: 5, Name: "Ⅴ"},
			{ID: 6, Name: "Ⅵ"},
			{ID: 7, Name: "Ⅶ"},
			{ID: 8, Name: "Ⅷ"},
			{ID: 9, Name: "前期(Ⅱ期)集中"},
			{ID: 10, Name: "後期(Ⅲ期)集中"},
		}
		if err := tx.Create(&terms).Error; err != nil {
			return err
		}

		departments := []models.Department{
			{ID: 1, Name: "生産機械システム技術科"},
			{ID: 2, Name: "生産電気システム技術科"},
			{ID: 3, Name: "生産電子情報システム技術科"},
		}
		if err := tx.Create(&departments).Error; err != nil {
			return err
		}

		rooms := []models.Room{
			{ID: 1205, Name: "A205", Capacity: 20},
			{ID: 2102, Name: "B102/103", Capacity: 20},
			{ID: 2201, Name: "B201", Capacity: 20},
			{ID: 2301, Name: "B301", Capacity: 20},
			{ID: 2306, Name: "B306(視聴覚室)", Capacity: 20},
			{ID: 3101, Name: "C101(生産ロボット室)", Capacity: 20},
			{ID: 3103, Name: "C103(開発課題実習室)", Capacity: 20},
			{ID: 3301, Name: "C301(マルチメディア実習室)", Capacity: 20},
			{ID: 3302, Name: "C302(システム開発実習室)", Capacity: 20},
			{ID: 3303, Name: "C303(システム開発実習室Ⅱ)", Capacity: 20},
			{ID: 3304, Name: "C304/305(応用課程生産管理ネットワーク応用実習室)", Capacity: 20},
			{ID: 4102, Name: "D102(回路基板加工室)", Capacity: 20},
			{ID: 4302, Name: "D302(PC実習室)", Capacity: 20},
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return err
		}

		subjects := []models.Subject{
			{ID: 301, Name: "工業技術英語", DepartmentID: 3, Credits: 2},
			{ID: 308, Name: "機械工学概論", DepartmentID: 3, Credits: 2},
			{ID: 309, Name: "アナログ回路応用設計技術", DepartmentID: 3, Credits: 2},
			{ID: 310, Name: "ディジタル回路応用設計技術", DepartmentID: 3, Credits: 2},
			{ID: 311, Name: "複合電子回路応用設計技術", DepartmentID: 3, Credits: 2},
			{ID: 312, Name: "ロボット工学", DepartmentID: 3, Credits: 2},
			{ID: 313, Name: "通信プロトコル実装設計", DepartmentID: 3, Credits: 2},
			{ID: 314, Name: "セキュアシステム設計", DepartmentID: 3, Credits: 2},
			{ID: 315, Name: "組込システム設計", DepartmentID: 3, Credits: 4},
			{ID: 317, Name: "機械工作・組立実習", DepartmentID: 3, Credits: 4},
			{ID: 318, Name: "実装設計製作実習", DepartmentID: 3, Credits: 4},
			{ID: 321, Name: "制御回路設計製作実習", DepartmentID: 3, Credits: 4},
			{ID: 322, Name: "センシングシステム構築実習", DepartmentID: 3, Credits: 4},
			{ID: 323, Name: "ロボット工学実習", DepartmentID: 3, Credits: 2},
			{ID: 324, Name: "通信プロトコル実装実習", DepartmentID: 3, Credits: 4},
			{ID: 325, Name: "セキュアシステム構築実習", DepartmentID: 3, Credits: 4},
			{ID: 327, Name: "生産管理システム構築実習Ⅱ", DepartmentID: 3, Credits: 2},
			{ID: 328, Name: "組込システム構築実習", DepartmentID: 3, Credits: 4},
			{ID: 329, Name: "組込デバイス設計実習", DepartmentID: 3, Credits: 4},
			{ID: 331, Name: "電子通信機器設計制作課題実習", DepartmentID: 3, Credits: 10},
			{ID: 380, Name: "標準課題Ⅰ", DepartmentID: 3, Credits: 10},
			{ID: 381, Name: "標準課題Ⅱ", DepartmentID: 3, Credits: 10},
		}
		if err := tx.Create(&subjects).Error; err != nil {
			return err
		}

		names := []string{
			"青井渓一郎", "赤坂龍成", "秋好拓海", "伊川翔", "岩切亮太",
			"上田和輝", "江本龍之介", "大久保碧瀧", "加來涼雅", "梶原悠平",
			"管野友富紀", "髙口翔真", "古城静雅", "小柳知也", "酒元翼",
			"光寺孝彦", "佐野勇太", "清水健心", "新谷雄飛", "関原響樹",
		}
		var students []models.Student
		for _, dept := range []int{1, 3} {
			for i, name := range names {
				students = append(students, models.Student{
					DepartmentID: dept,
					StudentNo:    i + 1,
					Name:         name,
				})
			}
		}
		if err := tx.Create(&students).Error; err != nil {
			return err
		}

		type planRow struct {
			date    string
			term    int
			weekday int
		}
		planRows := []planRow{
			{"2025-04-08", 1, 2}, {"2025-04-09", 1, 3}, {"2025-04-10", 1, 4},
			{"2025-04-11", 1, 5}, {"2025-04-14", 1, 1}, {"2025-04-15", 1, 2},
			{"2025-04-16", 1, 3}, {"2025-04-17", 1, 4}, {"2025-04-18", 1, 5},
			{"2025-04-21", 1, 1}, {"2025-04-22", 1, 2}, {"2025-04-23", 1, 3},
			{"2025-04-24", 1, 4}, {"2025-04-25", 1, 5}, {"2025-04-28", 1, 1},
			{"2025-05-07", 1, 3}, {"2025-05-08", 1, 4}, {"2025-05-09", 1, 5},
			{"2025-05-12", 1, 1}, {"2025-05-13", 1, 2}, {"2025-05-15", 1, 4},
			{"2025-05-16", 1, 5}, {"2025-05-19", 1, 1}, {"2025-05-20", 1, 2},
			{"2025-05-21", 1, 3}, {"2025-05-22", 1, 4}, {"2025-05-23", 1, 5},
			{"2025-05-26", 1, 1}, {"2025-05-27", 1, 2}, {"2025-05-28", 1, 3},
			{"2025-05-29", 1, 4}, {"2025-05-30", 1, 5}, {"2025-06-02", 1, 1},
			{"2025-06-03", 1, 2}, {"2025-06-04", 1, 3}, {"2025-06-05", 1, 4},
			{"2025-06-06", 1, 5}, {"2025-06-09", 1, 1}, {"2025-06-10", 1, 2},
			{"2025-06-11", 1, 3}, {"2025-06-12", 1, 4}, {"2025-06-13", 1, 5},
			{"2025-06-16", 1, 1}, {"2025-06-17", 1, 2}, {"2025-06-18", 1, 3},
			{"2025-06-19", 2, 4}, {"2025-06-20", 2, 5}, {"2025-06-23", 2, 1},
			{"2025-06-24", 2, 2}, {"2025-06-25", 2, 3}, {"2025-06-26", 2, 4},
			{"2025-06-27", 2, 5}, {"2025-06-30", 2, 1}, {"2025-07-01", 2, 2},
			{"2025-07-02", 2, 3}, {"2025-07-03", 2, 4}, {"2025-07-04", 2, 5},
			{"2025-07-07", 2, 1}, {"2025-07-08", 2, 2}, {"2025-07-09", 2, 3},
			{"2025-07-10", 2, 4}, {"2025-07-11", 2, 5}, {"2025-07-14", 2, 1},
			{"2025-07-15", 9, 0}, {"2025-07-16", 9, 0}, {"2025-07-17", 9, 0},
			{"2025-07-18", 9, 0}, {"2025-07-21", 9, 0}, {"2025-07-22", 9, 0},
			{"2025-07-23", 9, 0}, {"2025-07-24", 9, 0}, {"2025-07-25", 9, 0},
			{"2025-08-20", 2, 3}, {"2025-08-21", 2, 4}, {"2025-08-22", 2, 5},
			{"2025-08-25", 2, 1}, {"2025-08-26", 2, 2}, {"2025-08-27", 2, 3},
			{"2025-08-28", 2, 4}, {"2025-08-29", 2, 5}, {"2025-09-01", 2, 1},
			{"2025-09-02", 2, 2}, {"2025-09-03", 2, 3}, {"2025-09-04", 2, 4},
			{"2025-09-05", 2, 5}, {"2025-09-08", 2, 1}, {"2025-09-09", 2, 2},
			{"2025-09-10", 2, 3}, {"2025-09-11", 2, 4}, {"2025-09-12", 2, 5},
			{"2025-09-16", 2, 2}, {"2025-09-17", 2, 3}, {"2025-09-18", 2, 1},
			{"2025-09-19", 2, 5}, {"2025-09-22", 2, 1}, {"2025-09-24", 2, 3},
			{"2025-09-25", 2, 4}, {"2025-09-26", 2, 2}, {"2025-09-29", 2, 0},
			{"2025-09-30", 10, 0}, {"2025-10-01", 10, 0}, {"2025-10-02", 10, 0},
			{"2025-10-03", 10, 0}, {"2025-10-06", 10, 0}, {"2025-10-07", 10, 0},
			{"2025-10-08", 10, 0}, {"2025-10-09", 10, 0}, {"2025-10-10", 10, 0},
			{"2025-10-14", 3, 2}, {"2025-10-15", 3, 3}, {"2025-10-16", 3, 4},
			{"2025-10-17", 3, 5}, {"2025-10-20", 3, 1}, {"2025-10-21", 3, 2},
			{"2025-10-22", 3, 3}, {"2025-10-23", 3, 4}, {"2025-10-24", 3, 5},
			{"2025-10-27", 3, 1}, {"2025-10-28", 3, 2}, {"2025-10-29", 3, 3},
			{"2025-10-30", 3, 4}, {"2025-10-31", 3, 5}, {"2025-11-04", 3, 2},
			{"2025-11-05", 3, 3}, {"2025-11-06", 3, 1}, {"2025-11-07", 3, 5},
			{"2025-11-10", 3, 1}, {"2025-11-11", 3, 2}, {"2025-11-12", 3, 3},
			{"2025-11-13", 3, 4}, {"2025-11-14", 3, 5}, {"2025-11-17", 3, 1},
			{"2025-11-18", 3, 2}, {"2025-11-19", 3, 3}, {"2025-11-20", 3, 4},
			{"2025-11-21", 3, 5}, {"2025-11-25", 3, 1}, {"2025-11-26", 3, 3},
			{"2025-11-27", 3, 4}, {"2025-11-28", 3, 5}, {"2025-12-01", 3, 1},
			{"2025-12-02", 3, 2}, {"2025-12-03", 3, 3}, {"2025-12-04", 3, 4},
			{"2025-12-08", 3, 1}, {"2025-12-09", 3, 2}, {"2025-12-10", 3, 3},
			{"2025-12-11", 3, 4}, {"2025-12-12", 3, 5}, {"2025-12-15", 3, 1},
			{"2025-12-16", 3, 2}, {"2025-12-17", 4, 3}, {"2025-12-18", 3, 4},
			{"2025-12-19", 3, 5}, {"2025-12-22", 4, 1}, {"2025-12-23", 4, 2},
			{"2025-12-24", 4, 3}, {"2025-12-25", 4, 4}, {"2025-12-26", 4, 5},
			{"2026-01-13", 4, 1}, {"2026-01-14", 4, 3}, {"2026-01-15", 4, 4},
			{"2026-01-16", 4, 5}, {"2026-01-19", 4, 1}, {"2026-01-20", 4, 2},
			{"2026-01-21", 4, 3}, {"2026-01-22", 4, 4}, {"2026-01-23", 4, 5},
			{"2026-01-26", 4, 1}, {"2026-01-27", 4, 2}, {"2026-01-28", 4, 3},
			{"2026-01-29", 4, 4}, {"2026-01-30", 4, 5}, {"2026-02-02", 4, 1},
			{"2026-02-03", 4, 2}, {"2026-02-04", 4, 3}, {"2026-02-06", 4, 5},
			{"2026-02-09", 4, 1}, {"2026-02-10", 4, 2}, {"2026-02-12", 4, 4},
			{"2026-02-13", 4, 5}, {"2026-02-16", 4, 1}, {"2026-02-17", 4, 2},
			{"2026-02-18", 4, 3}, {"2026-02-19", 4, 4}, {"2026-02-20", 4, 5},
			{"2026-02-24", 4, 2}, {"2026-02-25", 4, 3}, {"2026-02-26", 4, 4},
			{"2026-02-27", 4, 5}, {"2026-03-02", 4, 1}, {"2026-03-03", 4, 2},
			{"2026-03-04", 4, 3}, {"2026-03-05", 4, 4}, {"2026-03-06", 4, 5},
			{"2026-03-09", 4, 1}, {"2026-03-10", 4, 2}, {"2026-03-11", 4, 0},
		}
		plans := make([]models.CalendarPlan, 0, len(planRows))
		for _, r := range planRows {
			plans = append(plans, models.CalendarPlan{Date: r.date, TermID: r.term, WeekdaySlot: r.weekday})
		}
		if err := tx.Create(&plans).Error; err != nil {
			return err
		}

		// Notes carry "room/teacher" for display.
		type wkRow struct {
			term, weekday, period, subject, room int
			note                                 string
		}
		wkRows := []wkRow{
			{1, 1, 1, 325, 3301, "C304/寺内"},
			{1, 1, 2, 325, 3301, "C304/寺内"},
			{1, 1, 3, 301, 2201, "/ワット"},
			{1, 1, 4, 313, 3301, "C302/中山"},
			{1, 2, 1, 314, 3301, "C304/寺内"},
			{1, 2, 2, 309, 3301, "C304/諏訪原"},
			{1, 2, 3, 310, 3301, "/岡田"},
			{1, 2, 4, 311, 3301, "C302/近藤"},
			{1, 3, 1, 312, 2301, "B102/玉井"},
			{1, 3, 2, 312, 2301, "B102/玉井"},
			{1, 4, 1, 315, 3302, "/下泉"},
			{1, 4, 2, 328, 3302, "/下泉"},
			{1, 4, 3, 322, 3302, "/寺内"},
			{1, 4, 4, 322, 3302, "/寺内"},
			{1, 5, 1, 315, 3302, "/下泉"},
			{1, 5, 2, 328, 3302, "/下泉"},
			{1, 5, 3, 318, 3302, "/近藤"},
			{1, 5, 4, 318, 3302, "/近藤"},
			{2, 1, 1, 325, 3301, "/寺内"},
			{2, 1, 2, 325, 3301, "/寺内"},
			{2, 1, 3, 301, 2201, "/ワット"},
			{2, 1, 4, 313, 3301, "/中山"},
			{2, 2, 1, 325, 3301, "/寺内"},
			{2, 2, 2, 309, 3301, "/諏訪原"},
			{2, 2, 3, 310, 3301, "/岡田"},
			{2, 2, 4, 311, 3302, "/近藤"},
			{2, 3, 1, 324, 3301, "/中山"},
			{2, 3, 2, 324, 3301, "/中山"},
			{2, 4, 1, 323, 3101, "/電気系"},
			{2, 4, 2, 323, 3101, "/電気系"},
			{2, 4, 3, 315, 3302, "/下泉"},
			{2, 4, 4, 328, 3302, "/下泉"},
			{2, 5, 3, 322, 3302, "/玉井"},
			{2, 5, 4, 322, 3302, "/玉井"},
			{3, 1, 1, 327, 3301, "/中山"},
			{3, 1, 2, 327, 3301, "/中山"},
			{3, 1, 3, 380, 3301, "C302/電子情報系"},
			{3, 1, 4, 380, 3301, "C302/電子情報系"},
			{3, 2, 1, 317, 3302, "K302/機械系"},
			{3, 2, 2, 317, 3302, "K302/機械系"},
			{3, 2, 3, 380, 3301, "C302/電子情報系"},
			{3, 2, 4, 380, 3301, "C302/電子情報系"},
			{3, 3, 1, 329, 3301, "/岡田"},
			{3, 3, 2, 329, 3301, "/岡田"},
			{3, 3, 3, 308, 2301, "/上野"},
			{3, 3, 4, 380, 3301, "C302/電子情報系"},
			{3, 3, 5, 321, 3302, "/玉井"},
			{3, 4, 1, 381, 3302, "C101/電子情報系"},
			{3, 4, 2, 381, 3302, "C101/電子情報系"},
			{3, 4, 3, 329, 3301, "/岡田"},
			{3, 4, 4, 331, 3302, "C101/電子情報系"},
			{3, 4, 5, 331, 3302, "C101/電子情報系"},
			{3, 5, 1, 331, 3302, "C101/電子情報系"},
			{3, 5, 2, 331, 3302, "C101/電子情報系"},
			{3, 5, 3, 380, 3301, "C302/電子情報系"},
			{3, 5, 4, 380, 3301, "C302/電子情報系"},
			{4, 1, 1, 381, 3302, "C101/電子情報系"},
			{4, 1, 2, 381, 3302, "C101/電子情報系"},
			{4, 2, 1, 317, 3302, "K302/機械系"},
			{4, 2, 2, 317, 3302, "K302/機械系"},
			{4, 2, 3, 381, 3302, "C101/電子情報系"},
			{4, 2, 4, 381, 3302, "C101/電子情報系"},
			{4, 3, 1, 329, 3301, "/岡田"},
			{4, 3, 2, 329, 3301, "/岡田"},
			{4, 3, 3, 308, 2301, "/上野"},
			{4, 4, 1, 331, 3302, "C101/電子情報系"},
			{4, 4, 2, 331, 3302, "C101/電子情報系"},
			{4, 4, 3, 331, 3302, "C101/電子情報系"},
			{4, 4, 4, 331, 3302, "C101/電子情報系"},
			{4, 5, 1, 331, 3302, "C101/電子情報系"},
			{4, 5, 2, 331, 3302, "C101/電子情報系"},
		}
		weekly := make([]models.WeeklyTimetable, 0, len(wkRows))
		for _, r := range wkRows {
			weekly = append(weekly, models.WeeklyTimetable{
				Year:         2025,
				DepartmentID: 3,
				TermID:       r.term,
				Weekday:      r.weekday,
				PeriodNo:     r.period,
				SubjectID:    r.subject,
				RoomID:       r.room,
				Note:         r.note,
			})
		}
		return tx.Create(&weekly).Error
	})
}
