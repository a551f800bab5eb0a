package dto

type DailyVerse struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

type DashboardSummaryDTO struct {
	DailyVerse          DailyVerse `json:"daily_verse"`
	CheckinQRHint       string     `json:"checkin_qr_hint"`
	GivingMasked        string     `json:"giving_masked"`
	GivingLast          string     `json:"giving_last"`
	Registrations       []string   `json:"registrations"`
	PrayerResponseCount int        `json:"prayer_response_count"`
	PrayerMessage       string     `json:"prayer_message"`
	GroupName           string     `json:"group_name"`
	GroupSchedule       string     `json:"group_schedule"`
	GroupLeader         string     `json:"group_leader"`
	Notifications       []string   `json:"notifications"`
	RecentActivity      []string   `json:"recent_activity"`
}

// Valid: cek minimal ayat harian terisi. Snapshot yang tidak lolos
// di-drop diam-diam dan diganti payload fallback.
func (d DashboardSummaryDTO) Valid() bool {
	return d.DailyVerse.Text != "" && d.DailyVerse.Reference != ""
}

// FallbackSummary: payload statis ilustratif yang dikirim kalau snapshot
// user belum ada atau tidak valid.
func FallbackSummary() DashboardSummaryDTO {
	return DashboardSummaryDTO{
		DailyVerse: DailyVerse{
			Text:      "凡勞苦擔重擔的人，可以到我這裡來。",
			Reference: "馬太福音 11:28",
		},
		CheckinQRHint:       "主日/活動簽到快速通行",
		GivingMasked:        "******",
		GivingLast:          "最近一次：09/28 · 已入帳",
		Registrations:       []string{"城市復興特會 · 已完成", "家庭關係工作坊 · 待付款"},
		PrayerResponseCount: 2,
		PrayerMessage:       "2 則代禱已被回應",
		GroupName:           "恩典小組",
		GroupSchedule:       "週五 20:00",
		GroupLeader:         "王小組長",
		Notifications:       []string{"久未出席提醒已送出", "10 月禱告會邀請"},
		RecentActivity: []string{
			"10/02 已完成「城市復興特會」報名",
			"10/01 代禱事項已新增回應",
			"09/28 奉獻收據已寄送至 Email",
		},
	}
}
