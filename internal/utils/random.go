package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
	"github.com/paiban-dev/store-scheduler/backend/internal/schedule"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

// GenerateRandomEmployee 生成隶属于指定门店的随机店员账号
func GenerateRandomEmployee(password string, emailDomainName string, storeID int64) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleStaff
	if rand.Intn(10) == 0 {
		role = domain.RoleStoreManager
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         role,
		StoreID:      &storeID,
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var storeNamePrefixes = []string{"中山", "天河", "越秀", "海珠", "番禺", "白云", "珠江", "东湖"}
var storeNameSuffixes = []string{"旗舰店", "分店", "社区店", "广场店"}

func GenerateRandomStore() *domain.Store {
	prefix := storeNamePrefixes[rand.Intn(len(storeNamePrefixes))]
	suffix := storeNameSuffixes[rand.Intn(len(storeNameSuffixes))]

	return &domain.Store{
		Name:    prefix + suffix,
		Address: prefix + fmt.Sprintf("路 %d 号", rand.Intn(500)+1),
	}
}

var shiftTemplateNames = []string{"早班", "午班", "晚班", "通班", "周末班"}

// GenerateRandomShiftTemplate 生成一个随机班次模板，时间总是落在 15 分钟刻度上
func GenerateRandomShiftTemplate(storeID int64, createdBy int64) *domain.ShiftTemplate {
	startMinutes := int32((rand.Intn(40) + 24) * 15) // 06:00 ~ 16:00 之间
	durationMinutes := int32((rand.Intn(17) + 16) * 15)
	endMinutes := startMinutes + durationMinutes
	if endMinutes > schedule.EndOfDayMinutes {
		endMinutes = schedule.EndOfDayMinutes - schedule.EndOfDayMinutes%15
	}

	lunchMinutes := int32(rand.Intn(4) * 15)

	startTime := schedule.FormatClock(startMinutes)
	endTime := schedule.FormatClock(endMinutes)

	return &domain.ShiftTemplate{
		StoreID:      storeID,
		Name:         shiftTemplateNames[rand.Intn(len(shiftTemplateNames))],
		StartTime:    startTime,
		EndTime:      endTime,
		LunchMinutes: lunchMinutes,
		TotalHours:   schedule.WorkHours(startTime, endTime, lunchMinutes),
		CreatedBy:    createdBy,
	}
}

// GenerateRandomSchedule 在距今 days 天内随机选一天，为指定员工生成一条已发布的排班
func GenerateRandomSchedule(storeID int64, employeeID int64, createdBy int64, days int) *domain.Schedule {
	date := time.Now().AddDate(0, 0, rand.Intn(days)).Format("2006-01-02")

	tpl := GenerateRandomShiftTemplate(storeID, createdBy)

	return &domain.Schedule{
		StoreID:      storeID,
		EmployeeID:   employeeID,
		Date:         date,
		StartTime:    tpl.StartTime,
		EndTime:      tpl.EndTime,
		LunchMinutes: tpl.LunchMinutes,
		CreatedBy:    createdBy,
	}
}

// GenerateRandomCreateDraft 为指定员工生成一条随机的新增草稿
func GenerateRandomCreateDraft(storeID int64, employeeID int64, createdBy int64, days int) *domain.ScheduleDraft {
	s := GenerateRandomSchedule(storeID, employeeID, createdBy, days)

	return &domain.ScheduleDraft{
		StoreID:      s.StoreID,
		EmployeeID:   s.EmployeeID,
		Date:         s.Date,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		LunchMinutes: s.LunchMinutes,
		Action:       domain.DraftActionCreate,
		CreatedBy:    createdBy,
	}
}
