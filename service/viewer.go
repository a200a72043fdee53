package service

import (
	"fmt"
	"io"
	"text/tabwriter"

	"financas/database"
	"financas/models"

	"gorm.io/gorm"
)

// Dump 把主要数据表以表格形式写到 w（控制台查看用）
// 交易只取前 20 条样本，避免输出过长。
func Dump(db *gorm.DB, w io.Writer) error {
	var users []models.User
	if err := db.Order("id ASC").Find(&users).Error; err != nil {
		return err
	}
	fmt.Fprintln(w, "\n--- 用户 ---")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tusername\temail")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", u.ID, u.Username, u.Email)
	}
	tw.Flush()

	var accounts []models.Account
	if err := db.Order("id ASC").Find(&accounts).Error; err != nil {
		return err
	}
	fmt.Fprintln(w, "\n--- 账户 ---")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\taccount_name\tcurrent_balance\tcreated_at")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			a.ID, a.AccountName, a.CurrentBalance.StringFixed(2),
			a.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	tw.Flush()

	transactions, err := database.ListTransactions(db, database.TransactionFilter{})
	if err != nil {
		return err
	}
	if len(transactions) > 20 {
		transactions = transactions[:20]
	}
	fmt.Fprintln(w, "\n--- 交易（前 20 条） ---")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\ttransaction_date\tamount\tdescription")
	for _, t := range transactions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			t.ID, t.TransactionDate, t.Amount.StringFixed(2), t.Description)
	}
	tw.Flush()

	transacoes, err := database.ListTransacoes(db)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\n--- 对外流水 ---")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tdescricao\tvalor\ttipo\tdata")
	for _, t := range transacoes {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\n", t.ID, t.Descricao, t.Valor, t.Tipo, t.Data)
	}
	return tw.Flush()
}
