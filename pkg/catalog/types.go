package catalog

import (
	"slices"
	"time"
	"unicode/utf8"

	"github.com/utaipei/fundraising/pkg/funding"
)

// DeadlineLayout is the date format of Project.Deadline.
const DeadlineLayout = time.DateOnly

// taipei is UTC+8 without DST; fixed so the binary needs no tzdata.
var taipei = time.FixedZone("CST", 8*60*60)

// CategoryAll matches every project.
const CategoryAll = "all"

type Project struct {
	ID              string `yaml:"id" json:"id"`
	Name            string `yaml:"name" json:"name"`
	Icon            string `yaml:"icon" json:"icon"`
	Category        string `yaml:"category" json:"category"`
	Description     string `yaml:"description" json:"description"`
	FullDescription string `yaml:"full_description" json:"full_description"`
	Goal            int64  `yaml:"goal" json:"goal"`
	Raised          int64  `yaml:"raised" json:"raised"`
	Donors          int    `yaml:"donors" json:"donors"`
	Deadline        string `yaml:"deadline" json:"deadline"`
	Urgent          bool   `yaml:"urgent" json:"urgent"`
	Impact          string `yaml:"impact" json:"impact"`
	ImpactAmount    int64  `yaml:"impact_amount" json:"impact_amount"`
}

func (p Project) Progress() funding.Progress {
	return funding.NewProgress(p.Raised, p.Goal)
}

// DeadlineTime is the end of the deadline day in Taipei time.
func (p Project) DeadlineTime() (time.Time, error) {
	d, err := time.ParseInLocation(DeadlineLayout, p.Deadline, taipei)
	if err != nil {
		return time.Time{}, err
	}
	return d.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

// DaysLeft counts the calendar days from now until the deadline, including
// the deadline day itself. It is 0 once the deadline has passed.
func (p Project) DaysLeft(now time.Time) int {
	end, err := p.DeadlineTime()
	if err != nil || now.After(end) {
		return 0
	}
	y, m, d := now.In(taipei).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, taipei)
	lastDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, taipei)
	return int(lastDay.Sub(today).Hours()/24) + 1
}

// ImpactUnits reports how many of the project's impact units amount covers.
func (p Project) ImpactUnits(amount int64) int64 {
	return funding.ImpactUnits(amount, p.ImpactAmount)
}

type Donor struct {
	ID       int      `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Amount   int64    `yaml:"amount" json:"amount"`
	Title    string   `yaml:"title" json:"title,omitempty"`
	Projects []string `yaml:"projects" json:"projects"`
	Message  string   `yaml:"message" json:"message,omitempty"`
}

func (d Donor) clone() Donor {
	d.Projects = slices.Clone(d.Projects)
	return d
}

// Tier is derived from the cumulative amount each time it is asked for.
func (d Donor) Tier() funding.Tier {
	return funding.RecognitionTier(d.Amount)
}

// Avatar is the first character of the donor's name.
func (d Donor) Avatar() string {
	r, _ := utf8.DecodeRuneInString(d.Name)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// RecentDonation is an entry of the live donation feed. Names are already
// masked in the data.
type RecentDonation struct {
	ID        int           `yaml:"id" json:"id"`
	Name      string        `yaml:"name" json:"name"`
	Amount    int64         `yaml:"amount" json:"amount"`
	ProjectID string        `yaml:"project_id" json:"project_id"`
	Ago       time.Duration `yaml:"ago" json:"-"`
	Message   string        `yaml:"message" json:"message,omitempty"`
}

// AmountPreset is a suggested gift with the impact it buys.
type AmountPreset struct {
	Amount int64  `yaml:"amount" json:"amount"`
	Impact string `yaml:"impact" json:"impact"`
}

type Category struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon" json:"icon"`
}

type PaymentMethod struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description" json:"description"`
}

type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

type Contact struct {
	Phone   string `yaml:"phone" json:"phone"`
	Email   string `yaml:"email" json:"email"`
	Address string `yaml:"address" json:"address"`
}

type School struct {
	Name          string  `yaml:"name" json:"name"`
	NameEn        string  `yaml:"name_en" json:"name_en"`
	Slogan        string  `yaml:"slogan" json:"slogan"`
	Founded       int     `yaml:"founded" json:"founded"`
	Students      int     `yaml:"students" json:"students"`
	OlympicMedals int     `yaml:"olympic_medals" json:"olympic_medals"`
	Campuses      int     `yaml:"campuses" json:"campuses"`
	Contact       Contact `yaml:"contact" json:"contact"`
}

// Stats are campaign-wide totals.
type Stats struct {
	Projects int              `json:"projects"`
	Donors   int              `json:"donors"`
	Goal     int64            `json:"goal"`
	Raised   int64            `json:"raised"`
	Progress funding.Progress `json:"progress"`
}

// TierGroup is one band of the honor wall.
type TierGroup struct {
	Tier   funding.TierInfo `json:"tier"`
	Donors []Donor          `json:"donors"`
}
