package cli

import (
	"context"
	"flag"
	"fmt"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/export"
)

func (a *app) runManager(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("manager: missing subcommand")
	}
	switch args[0] {
	case "report":
		return a.managerReport(ctx, args[1:])
	case "popular":
		return a.managerPopular(ctx, args[1:])
	case "customers":
		return a.managerCustomers(ctx)
	case "employees":
		return a.managerEmployees(ctx)
	case "menu-add":
		return a.managerMenuAdd(ctx, args[1:])
	case "menu-update":
		return a.managerMenuUpdate(ctx, args[1:])
	default:
		return usageError("manager: unknown subcommand %q", args[0])
	}
}

func (a *app) managerReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("manager report", flag.ContinueOnError)
	kind := fs.String("type", "daily", "report type: daily, category, or server")
	days := fs.Int("days", 0, "lookback window for the daily report")
	exportPath := fs.String("export", "", "write the report to an .xlsx file")
	if err := fs.Parse(args); err != nil {
		return usageError("manager report: %v", err)
	}

	var (
		title   string
		headers []string
		rows    [][]any
	)

	switch *kind {
	case "daily":
		data, err := a.reports.Daily(ctx, *days)
		if err != nil {
			return err
		}
		title = "Daily Revenue"
		headers = []string{"Date", "Orders", "Subtotal", "Tax", "Tips", "Total"}
		for _, r := range data {
			rows = append(rows, []any{r.Date, r.OrderCount, r.Subtotal, r.Tax, r.Tips, r.Total})
		}
	case "category":
		data, err := a.reports.ByCategory(ctx)
		if err != nil {
			return err
		}
		title = "Revenue by Category"
		headers = []string{"Category", "Orders", "Items Sold", "Revenue"}
		for _, r := range data {
			rows = append(rows, []any{r.Category, r.OrderCount, r.ItemsSold, r.Revenue})
		}
	case "server":
		data, err := a.reports.ByServer(ctx)
		if err != nil {
			return err
		}
		title = "Revenue by Server"
		headers = []string{"Server", "Role", "Orders", "Gross Sales", "Tips", "Total"}
		for _, r := range data {
			rows = append(rows, []any{r.ServerName, string(r.Role), r.OrderCount, r.GrossSales, r.TotalTips, r.TotalRevenue})
		}
	default:
		return usageError("manager report: unknown type %q, use daily, category, or server", *kind)
	}

	return a.renderReport(title, headers, rows, *exportPath)
}

func (a *app) managerPopular(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("manager popular", flag.ContinueOnError)
	limit := fs.Int("limit", 0, "number of items to show")
	exportPath := fs.String("export", "", "write the report to an .xlsx file")
	if err := fs.Parse(args); err != nil {
		return usageError("manager popular: %v", err)
	}

	data, err := a.reports.Popular(ctx, *limit)
	if err != nil {
		return err
	}
	headers := []string{"Item", "Category", "Times Ordered", "Revenue"}
	rows := make([][]any, 0, len(data))
	for _, r := range data {
		rows = append(rows, []any{r.ItemName, r.Category, r.TimesOrdered, r.Revenue})
	}
	return a.renderReport("Popular Items", headers, rows, *exportPath)
}

func (a *app) renderReport(title string, headers []string, rows [][]any, exportPath string) error {
	if len(rows) == 0 {
		fmt.Println("no data for this report")
		return nil
	}
	if exportPath != "" {
		if err := export.WriteXLSX(exportPath, title, headers, rows); err != nil {
			return err
		}
		a.lg.Info().Str("path", exportPath).Msg("report exported")
		fmt.Println("report written to " + exportPath)
		return nil
	}
	printTable(title, headers, rows)
	return nil
}

func (a *app) managerCustomers(ctx context.Context) error {
	data, err := a.reports.AboveAverageCustomers(ctx)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		fmt.Println("no customers with completed orders")
		return nil
	}

	fmt.Printf("average customer spending: %s\n", money(data[0].AverageSpending))
	rows := make([][]any, 0, len(data))
	for _, c := range data {
		rows = append(rows, []any{c.CustomerID, c.CustomerName, c.Email, c.OrderCount, c.TotalSpent})
	}
	printTable("Above-Average Customers",
		[]string{"ID", "Customer", "Email", "Orders", "Total Spent"}, rows)
	return nil
}

func (a *app) managerEmployees(ctx context.Context) error {
	data, err := a.reports.Employees(ctx)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		fmt.Println("no employees found")
		return nil
	}

	rows := make([][]any, 0, len(data))
	for _, e := range data {
		rows = append(rows, []any{e.ID, e.Name, string(e.Role), e.HourlyWage, e.ManagerName})
	}
	printTable("Employees", []string{"ID", "Name", "Role", "Wage", "Manager"}, rows)
	return nil
}

func (a *app) managerMenuAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("manager menu-add", flag.ContinueOnError)
	name := fs.String("name", "", "item name")
	desc := fs.String("description", "", "item description")
	price := fs.Float64("price", 0, "item price")
	category := fs.Int64("category", 0, "category ID")
	if err := fs.Parse(args); err != nil {
		return usageError("manager menu-add: %v", err)
	}
	if *name == "" || *category == 0 {
		return usageError("manager menu-add: --name and --category are required")
	}

	rec, err := a.menu.Add(ctx, domain.MenuItemCreateRequest{
		Name:        *name,
		Description: *desc,
		Price:       *price,
		CategoryID:  *category,
	})
	if err != nil {
		return err
	}
	printPanel("Menu Item Added",
		fmt.Sprintf("ID: %d", rec.ID),
		"Name: "+rec.Name,
		"Category: "+rec.Category,
		"Price: "+money(rec.Price))
	return nil
}

func (a *app) managerMenuUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("manager menu-update", flag.ContinueOnError)
	item := fs.Int64("item", 0, "menu item ID")
	price := fs.Float64("price", 0, "new price")
	available := fs.Bool("available", false, "availability")
	desc := fs.String("description", "", "new description")
	if err := fs.Parse(args); err != nil {
		return usageError("manager menu-update: %v", err)
	}
	if *item == 0 {
		return usageError("manager menu-update: --item is required")
	}

	req := domain.MenuItemUpdateRequest{ItemID: *item}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "price":
			req.Price = price
		case "available":
			req.Available = available
		case "description":
			req.Description = desc
		}
	})

	rec, err := a.menu.Update(ctx, req)
	if err != nil {
		return err
	}
	printPanel("Menu Item Updated",
		fmt.Sprintf("ID: %d", rec.ID),
		"Name: "+rec.Name,
		"Price: "+money(rec.Price),
		fmt.Sprintf("Available: %v", rec.Available))
	return nil
}
