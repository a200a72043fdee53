package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"financas/config"
	"financas/database"
	"financas/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed 生成测试数据
// 走仓储层的写入口，数量由配置决定。faker 偶尔会撞上唯一约束，
// 冲突的行跳过不算失败，其余错误中断。
func Seed(db *gorm.DB, cfg config.SeedConfig) error {
	log.Println("生成用户...")
	var userIDs []uint
	for i := 0; i < cfg.Users; i++ {
		hash, err := bcrypt.GenerateFromPassword([]byte(gofakeit.Password(true, true, true, false, false, 12)), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("生成密码哈希失败: %w", err)
		}
		id, err := database.CreateUser(db, gofakeit.Username(), gofakeit.Email(), string(hash))
		if errors.Is(err, database.ErrConflict) {
			log.Printf("用户名或邮箱撞重，跳过: %v", err)
			continue
		}
		if err != nil {
			return err
		}
		userIDs = append(userIDs, id)
	}

	log.Println("生成账户和分类...")
	// 账户类型里去掉 Other，和真实账户更接近
	accountTypes := models.GetAccountTypes()[:4]
	for _, userID := range userIDs {
		for i := 0; i < cfg.AccountsPerUser; i++ {
			accountType := gofakeit.RandomString(accountTypes)
			name := fmt.Sprintf("%s Account %d", accountType, i+1)
			balance := decimal.NewFromFloat(gofakeit.Price(500, 50000))
			if _, err := database.CreateAccount(db, userID, name, accountType, balance); err != nil {
				return err
			}
		}

		for i := 0; i < cfg.CategoriesPerUser; i++ {
			categoryType := gofakeit.RandomString(models.GetCategoryTypes())
			uid := userID
			_, err := database.CreateCategory(db, &uid, gofakeit.Word(), categoryType)
			if errors.Is(err, database.ErrConflict) {
				continue
			}
			if err != nil {
				return err
			}
		}
	}

	log.Println("生成交易...")
	now := time.Now()
	for _, userID := range userIDs {
		var accountIDs []uint
		if err := db.Model(&models.Account{}).Where("user_id = ?", userID).Pluck("id", &accountIDs).Error; err != nil {
			return err
		}
		var categoryIDs []uint
		if err := db.Model(&models.Category{}).Where("user_id = ? OR user_id IS NULL", userID).Pluck("id", &categoryIDs).Error; err != nil {
			return err
		}
		if len(accountIDs) == 0 || len(categoryIDs) == 0 {
			continue
		}

		for i := 0; i < cfg.TransactionsPerUser; i++ {
			date := gofakeit.DateRange(now.AddDate(-1, 0, 0), now).Format(models.DateLayout)
			amount := decimal.NewFromFloat(gofakeit.Price(1, 1000))
			_, err := database.CreateTransaction(db,
				userID,
				accountIDs[gofakeit.Number(0, len(accountIDs)-1)],
				categoryIDs[gofakeit.Number(0, len(categoryIDs)-1)],
				date,
				amount,
				gofakeit.RandomString(models.GetTransactionTypes()),
				gofakeit.Sentence(5),
			)
			if err != nil {
				return err
			}
		}
	}

	log.Println("生成预算和投资...")
	month := now.Format(models.MonthLayout)
	for _, userID := range userIDs {
		var categoryIDs []uint
		if err := db.Model(&models.Category{}).Where("user_id = ?", userID).Pluck("id", &categoryIDs).Error; err != nil {
			return err
		}
		for _, categoryID := range categoryIDs {
			amount := decimal.NewFromFloat(gofakeit.Price(100, 5000))
			_, err := database.CreateBudget(db, userID, categoryID, month, amount)
			if errors.Is(err, database.ErrConflict) {
				continue
			}
			if err != nil {
				return err
			}
		}

		symbol := strings.ToUpper(gofakeit.LetterN(4))
		investmentID, err := database.CreateInvestment(db, userID, nil,
			gofakeit.Company(), symbol,
			gofakeit.RandomString(models.GetInvestmentTypes()),
			decimal.NewFromFloat(gofakeit.Price(1000, 100000)))
		if errors.Is(err, database.ErrConflict) {
			continue
		}
		if err != nil {
			return err
		}

		quantity := decimal.NewFromFloat(gofakeit.Price(1, 100))
		price := decimal.NewFromFloat(gofakeit.Price(10, 500))
		_, err = database.CreateInvestmentTransaction(db, investmentID,
			gofakeit.DateRange(now.AddDate(-1, 0, 0), now).Format(models.DateLayout),
			"Buy", quantity, price, quantity.Mul(price).Round(2),
			gofakeit.Sentence(4))
		if err != nil {
			return err
		}
	}

	log.Println("测试数据生成完成")
	return nil
}
