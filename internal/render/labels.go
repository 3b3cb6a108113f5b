package render

import (
	"github.com/verte-zerg/runcals/internal/model"
	"github.com/verte-zerg/runcals/internal/settings"
)

// Labels is the user-facing text for one language.
type Labels struct {
	EphTitle       string
	TrackTitle     string
	EphResult      string // format with one %.2f verb
	EstimatedTime  string // format with one %s verb
	Pace           string
	PacePerKm      string
	CompletedTime  string
	TotalTime400   string
	SplitTimes     string
	Projections    string
	Race10K        string
	HalfMarathon   string
	Marathon       string
	History        string
	NoHistory      string
	Cleared        string
	Deleted        string
	Index          string
	Mode           string
	Distance       string
	Elevation      string
	Input          string
	Result         string
	Timestamp      string
	Trend          string
	EphChart       string
	PaceChart      string
	NotEnoughData  string
	ModeEph        string
	ModeTime       string
	ModePaceToTime string
	ModeTimeToPace string
	UpcomingEvents string
	PastEvents     string
	NoEvents       string
	NoPastEvents   string
	NextEvent      string
	Today          string
	DaysUntil      string // format with one %d verb
	EventName      string
	Date           string
	Type           string
	Notes          string
	ID             string
	EventSaved     string
	EventDeleted   string
	EventsCleared  string
	RunningTips    string
	NoArticles     string
	FromCache      string
	NewArticles    string // format with one %d verb
	FetchFailed    string
	AvailableDates string
	Language       string
	Theme          string
	Light          string
	Dark           string
	Automatic      string
	Saved          string
	EventTypes     map[model.EventType]string
	Distances      map[model.EventDistance]string
}

var english = Labels{
	EphTitle:       "EpH Calculator",
	TrackTitle:     "400m Track Calculator",
	EphResult:      "EpH = %.2f",
	EstimatedTime:  "Estimated Completion Time = %s",
	Pace:           "Pace",
	PacePerKm:      "min/km",
	CompletedTime:  "Completed time",
	TotalTime400:   "Total Time for 400m",
	SplitTimes:     "Split Times",
	Projections:    "Race Projections",
	Race10K:        "10K",
	HalfMarathon:   "Half Marathon",
	Marathon:       "Marathon",
	History:        "Calculation History",
	NoHistory:      "No calculation history",
	Cleared:        "History cleared",
	Deleted:        "Entry deleted",
	Index:          "#",
	Mode:           "Mode",
	Distance:       "Distance",
	Elevation:      "Elevation",
	Input:          "Input",
	Result:         "Result",
	Timestamp:      "Time",
	Trend:          "EpH trend",
	EphChart:       "EpH over time",
	PaceChart:      "Pace over time (min/km)",
	NotEnoughData:  "Not enough entries to chart",
	ModeEph:        "EpH",
	ModeTime:       "Time",
	ModePaceToTime: "pace to time",
	ModeTimeToPace: "time to pace",
	UpcomingEvents: "Upcoming Events",
	PastEvents:     "Past Events",
	NoEvents:       "No upcoming events",
	NoPastEvents:   "No past events",
	NextEvent:      "Next event",
	Today:          "Today",
	DaysUntil:      "%d days to go",
	EventName:      "Event",
	Date:           "Date",
	Type:           "Type",
	Notes:          "Notes",
	ID:             "ID",
	EventSaved:     "Event saved",
	EventDeleted:   "Event deleted",
	EventsCleared:  "All events deleted",
	RunningTips:    "Running Tips",
	NoArticles:     "No articles",
	FromCache:      "cached",
	NewArticles:    "%d new",
	FetchFailed:    "Could not refresh articles, showing saved copy",
	AvailableDates: "Available dates",
	Language:       "Language",
	Theme:          "Theme",
	Light:          "Light",
	Dark:           "Dark",
	Automatic:      "Automatic",
	Saved:          "Saved",
	EventTypes: map[model.EventType]string{
		model.EventTypeRace:     "Race",
		model.EventTypeTraining: "Training",
		model.EventTypeEvent:    "Event",
	},
	Distances: map[model.EventDistance]string{
		model.EventDistance5K:           "5KM",
		model.EventDistance10K:          "10KM",
		model.EventDistanceHalfMarathon: "Half Marathon",
		model.EventDistanceMarathon:     "Marathon",
		model.EventDistanceTrailRun:     "Trail Run",
		model.EventDistanceOther:        "Other",
	},
}

var chinese = Labels{
	EphTitle:       "EpH計算器",
	TrackTitle:     "400米賽道計算器",
	EphResult:      "EpH = %.2f",
	EstimatedTime:  "預計完成時間 = %s",
	Pace:           "配速",
	PacePerKm:      "分/公里",
	CompletedTime:  "完成時間",
	TotalTime400:   "400米總時間",
	SplitTimes:     "分段時間",
	Projections:    "比賽預估",
	Race10K:        "10公里",
	HalfMarathon:   "半程馬拉松",
	Marathon:       "全程馬拉松",
	History:        "計算歷史",
	NoHistory:      "暫無計算歷史",
	Cleared:        "已清除歷史",
	Deleted:        "已刪除記錄",
	Index:          "#",
	Mode:           "模式",
	Distance:       "距離",
	Elevation:      "爬升",
	Input:          "輸入",
	Result:         "結果",
	Timestamp:      "時間",
	Trend:          "EpH 趨勢",
	EphChart:       "EpH 走勢",
	PaceChart:      "配速走勢（分/公里）",
	NotEnoughData:  "記錄不足，無法繪圖",
	ModeEph:        "EpH",
	ModeTime:       "時間",
	ModePaceToTime: "配速換算時間",
	ModeTimeToPace: "時間換算配速",
	UpcomingEvents: "即將到來的賽事",
	PastEvents:     "過往賽事",
	NoEvents:       "暫無即將到來的賽事",
	NoPastEvents:   "暫無過往賽事",
	NextEvent:      "下一場",
	Today:          "今天",
	DaysUntil:      "還有 %d 天",
	EventName:      "賽事",
	Date:           "日期",
	Type:           "類型",
	Notes:          "備註",
	ID:             "ID",
	EventSaved:     "已儲存賽事",
	EventDeleted:   "已刪除賽事",
	EventsCleared:  "已刪除所有賽事",
	RunningTips:    "跑步小貼士",
	NoArticles:     "暫無文章",
	FromCache:      "快取",
	NewArticles:    "%d 篇新文章",
	FetchFailed:    "無法更新文章，顯示已儲存內容",
	AvailableDates: "可選日期",
	Language:       "語言",
	Theme:          "主題",
	Light:          "淺色",
	Dark:           "深色",
	Automatic:      "自動",
	Saved:          "已儲存",
	EventTypes: map[model.EventType]string{
		model.EventTypeRace:     "比賽",
		model.EventTypeTraining: "訓練",
		model.EventTypeEvent:    "活動",
	},
	Distances: map[model.EventDistance]string{
		model.EventDistance5K:           "5公里",
		model.EventDistance10K:          "10公里",
		model.EventDistanceHalfMarathon: "半程馬拉松",
		model.EventDistanceMarathon:     "全程馬拉松",
		model.EventDistanceTrailRun:     "越野跑",
		model.EventDistanceOther:        "其他",
	},
}

// LabelsFor returns the text for lang, defaulting to English.
func LabelsFor(lang settings.Language) Labels {
	if lang == settings.Chinese {
		return chinese
	}
	return english
}

// ThemeName returns the localized name of a theme.
func (l Labels) ThemeName(t settings.Theme) string {
	switch t {
	case settings.ThemeLight:
		return l.Light
	case settings.ThemeDark:
		return l.Dark
	default:
		return l.Automatic
	}
}

// EventDistance returns the localized distance, with the custom distance
// for free-form categories.
func (l Labels) EventDistance(ev model.RaceEvent) string {
	name := l.Distances[ev.Distance]
	if name == "" {
		name = string(ev.Distance)
	}
	if ev.CustomDistance != "" {
		return name + " (" + ev.CustomDistance + ")"
	}
	return name
}
