package cli

import (
	"context"
	"flag"
	"fmt"

	"restaurant-admin/internal/domain"
)

func (a *app) runServer(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("server: missing subcommand")
	}
	switch args[0] {
	case "order":
		return a.serverOrder(ctx, args[1:])
	case "add-item":
		return a.serverAddItem(ctx, args[1:])
	case "tip":
		return a.serverTip(ctx, args[1:])
	case "menu":
		return a.serverMenu(ctx, args[1:])
	default:
		return usageError("server: unknown subcommand %q", args[0])
	}
}

func (a *app) serverOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("server order", flag.ContinueOnError)
	employee := fs.Int64("employee", 0, "employee ID taking the order")
	table := fs.Int64("table", 0, "table ID for dine-in orders")
	customer := fs.Int64("customer", 0, "customer ID")
	orderType := fs.String("type", string(domain.OrderDineIn), "order type: Dine-In, Takeout, or Bar")
	if err := fs.Parse(args); err != nil {
		return usageError("server order: %v", err)
	}
	if *employee == 0 {
		return usageError("server order: --employee is required")
	}

	req := domain.OrderCreateRequest{
		EmployeeID: *employee,
		Type:       domain.OrderType(*orderType),
	}
	if *table != 0 {
		req.TableID = table
	}
	if *customer != 0 {
		req.CustomerID = customer
	}

	conf, err := a.orders.Create(ctx, req)
	if err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("Order ID: %d", conf.ID),
		"Server: " + conf.ServerName,
		"Type: " + string(conf.Type),
		"Status: " + string(conf.Status),
	}
	for _, w := range conf.Warnings {
		lines = append(lines, "Warning: "+w)
	}
	printPanel("New Order", lines...)
	return nil
}

func (a *app) serverAddItem(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("server add-item", flag.ContinueOnError)
	order := fs.Int64("order", 0, "order ID")
	item := fs.Int64("item", 0, "menu item ID")
	qty := fs.Int("qty", 1, "quantity")
	notes := fs.String("notes", "", "special instructions")
	force := fs.Bool("force", false, "add the item even if unavailable")
	if err := fs.Parse(args); err != nil {
		return usageError("server add-item: %v", err)
	}
	if *order == 0 || *item == 0 {
		return usageError("server add-item: --order and --item are required")
	}

	res, err := a.orders.AddItem(ctx, domain.OrderItemRequest{
		OrderID:  *order,
		ItemID:   *item,
		Quantity: *qty,
		Notes:    *notes,
		Force:    *force,
	})
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		fmt.Println("warning: " + w)
	}
	fmt.Printf("added %dx %s @ %s (%s) to order %d, new total %s\n",
		res.Quantity, res.ItemName, money(res.UnitPrice), money(res.ItemTotal),
		*order, money(res.NewOrderTotal))
	return nil
}

func (a *app) serverTip(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("server tip", flag.ContinueOnError)
	order := fs.Int64("order", 0, "order ID")
	amount := fs.Float64("amount", -1, "tip amount")
	if err := fs.Parse(args); err != nil {
		return usageError("server tip: %v", err)
	}
	if *order == 0 || *amount < 0 {
		return usageError("server tip: --order and --amount are required")
	}

	total, err := a.orders.SetTip(ctx, *order, *amount)
	if err != nil {
		return err
	}
	fmt.Printf("tip of %s recorded on order %d, total is now %s\n",
		money(*amount), *order, money(total))
	return nil
}

func (a *app) serverMenu(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("server menu", flag.ContinueOnError)
	category := fs.String("category", "", "filter by category name")
	categories := fs.Bool("categories", false, "list the categories instead of items")
	if err := fs.Parse(args); err != nil {
		return usageError("server menu: %v", err)
	}

	if *categories {
		cats, err := a.menu.Categories(ctx)
		if err != nil {
			return err
		}
		rows := make([][]any, 0, len(cats))
		for _, c := range cats {
			rows = append(rows, []any{c.ID, c.Name, c.Description})
		}
		printTable("Categories", []string{"ID", "Name", "Description"}, rows)
		return nil
	}

	items, err := a.menu.List(ctx, *category)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("no menu items found")
		return nil
	}

	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{it.ID, it.Name, it.Category, it.Price, it.Available})
	}
	printTable("Menu", []string{"ID", "Name", "Category", "Price", "Available"}, rows)
	return nil
}
