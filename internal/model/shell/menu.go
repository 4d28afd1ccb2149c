package shell

import (
	"strconv"
	"strings"
)

type command int

const (
	commandUnknown command = iota

	commandRegister
	commandLogin
	commandExit

	commandAddExpense
	commandViewAll
	commandViewByCategory
	commandViewTotal
	commandSave
	commandLoad
	commandLogout
)

type menuItem struct {
	cmd   command
	label string
}

// menu items are chosen by their 1-based position.
type menu struct {
	title string
	items []menuItem
}

var mainMenu = menu{
	title: "Expense Manager Application",
	items: []menuItem{
		{commandRegister, "Register"},
		{commandLogin, "Login"},
		{commandExit, "Exit"},
	},
}

var sessionMenu = menu{
	title: "Expense Management",
	items: []menuItem{
		{commandAddExpense, "Add Expense"},
		{commandViewAll, "View All Expenses"},
		{commandViewByCategory, "View Expenses by Category"},
		{commandViewTotal, "View Total by Category"},
		{commandSave, "Save Expenses"},
		{commandLoad, "Load Expenses"},
		{commandLogout, "Logout"},
	},
}

func (m menu) parse(input string) command {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(m.items) {
		return commandUnknown
	}
	return m.items[n-1].cmd
}

func (m menu) lines() []string {
	res := make([]string, 0, len(m.items)+1)
	res = append(res, "\n"+m.title)
	for i, item := range m.items {
		res = append(res, strconv.Itoa(i+1)+". "+item.label)
	}
	return res
}
