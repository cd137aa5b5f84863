package commands

import (
	"context"

	"restaurant-management/internal/models"
)

type empty struct{}

func (d *Dispatcher) registerCustomers(svc CustomerService) {
	d.register("customer.list", op("Failed to load customers.", func(ctx context.Context, _ empty) (interface{}, error) {
		return svc.List(ctx), nil
	}))
	d.register("customer.get", op("Failed to load customer.", func(ctx context.Context, p idPayload) (interface{}, error) {
		return svc.Get(ctx, p.ID)
	}))
	d.register("customer.create", op("Failed to add customer.", func(ctx context.Context, c models.Customer) (interface{}, error) {
		return svc.Create(ctx, &c)
	}))
	d.register("customer.update", op("Failed to update customer.", func(ctx context.Context, c models.Customer) (interface{}, error) {
		if err := svc.Update(ctx, &c); err != nil {
			return nil, err
		}
		return c, nil
	}))
	d.register("customer.delete", op("Failed to delete customer.", func(ctx context.Context, p idPayload) (interface{}, error) {
		return p, svc.Delete(ctx, p.ID)
	}))
	d.register("customer.next_id", op("Failed to generate customer ID.", func(ctx context.Context, _ empty) (interface{}, error) {
		id, err := svc.NextID(ctx)
		return nextIDResult{ID: id}, err
	}))
}

func (d *Dispatcher) registerStaff(svc StaffService) {
	d.register("staff.list", op("Failed to load staff.", func(ctx context.Context, _ empty) (interface{}, error) {
		return svc.List(ctx), nil
	}))
	d.register("staff.list_by_role", op("Failed to load staff.", func(ctx context.Context, p rolePayload) (interface{}, error) {
		return svc.ListByRole(ctx, p.Role)
	}))
	d.register("staff.get", op("Failed to load staff member.", func(ctx context.Context, p idPayload) (interface{}, error) {
		return svc.Get(ctx, p.ID)
	}))
	d.register("staff.create", op("Failed to add staff member.", func(ctx context.Context, f staffForm) (interface{}, error) {
		member, err := f.staff()
		if err != nil {
			return nil, err
		}
		return svc.Create(ctx, member)
	}))
	d.register("staff.update", op("Failed to update staff member.", func(ctx context.Context, f staffForm) (interface{}, error) {
		member, err := f.staff()
		if err != nil {
			return nil, err
		}
		if err := svc.Update(ctx, member); err != nil {
			return nil, err
		}
		return member, nil
	}))
	d.register("staff.delete", op("Failed to delete staff member.", func(ctx context.Context, p idPayload) (interface{}, error) {
		return p, svc.Delete(ctx, p.ID)
	}))
	d.register("staff.next_id", op("Failed to generate staff ID.", func(ctx context.Context, _ empty) (interface{}, error) {
		id, err := svc.NextID(ctx)
		return nextIDResult{ID: id}, err
	}))
}

func (d *Dispatcher) registerMenu(svc MenuService) {
	d.register("menu.list", op("Failed to load menu.", func(ctx context.Context, _ empty) (interface{}, error) {
		return svc.List(ctx), nil
	}))
	d.register("menu.list_by_category", op("Failed to load menu.", func(ctx context.Context, p categoryPayload) (interface{}, error) {
		return svc.ListByCategory(ctx, p.Category), nil
	}))
	d.register("menu.categories", op("Failed to load menu categories.", func(ctx context.Context, _ empty) (interface{}, error) {
		return svc.Categories(ctx), nil
	}))
	d.register("menu.get", op("Failed to load menu item.", func(ctx context.Context, p namePayload) (interface{}, error) {
		return svc.Get(ctx, p.Name)
	}))
	d.register("menu.create", op("Failed to add menu item.", func(ctx context.Context, f menuForm) (interface{}, error) {
		item, err := f.item()
		if err != nil {
			return nil, err
		}
		return svc.Create(ctx, item)
	}))
	d.register("menu.update", op("Failed to update menu item.", func(ctx context.Context, f menuForm) (interface{}, error) {
		item, err := f.item()
		if err != nil {
			return nil, err
		}
		if err := svc.Update(ctx, item, f.OriginalName); err != nil {
			return nil, err
		}
		return item, nil
	}))
	d.register("menu.delete", op("Failed to delete menu item.", func(ctx context.Context, p namePayload) (interface{}, error) {
		return p, svc.Delete(ctx, p.Name)
	}))
}

func (d *Dispatcher) registerOrders(svc OrderService) {
	d.register("order.list", op("Failed to load orders.", func(ctx context.Context, _ empty) (interface{}, error) {
		return orderViews(svc.List(ctx)), nil
	}))
	d.register("order.list_by_customer", op("Failed to load orders.", func(ctx context.Context, p customerRef) (interface{}, error) {
		orders, err := svc.ListByCustomer(ctx, p.CustomerID)
		if err != nil {
			return nil, err
		}
		return orderViews(orders), nil
	}))
	d.register("order.get", op("Failed to load order.", func(ctx context.Context, p idPayload) (interface{}, error) {
		o, err := svc.Get(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return o.View(), nil
	}))
	d.register("order.create", op("Failed to create order.", func(ctx context.Context, req models.CreateOrderRequest) (interface{}, error) {
		o, err := svc.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		return o.View(), nil
	}))
	d.register("order.quote", op("Failed to calculate order total.", func(ctx context.Context, req models.CreateOrderRequest) (interface{}, error) {
		o, err := svc.Quote(ctx, req)
		if err != nil {
			return nil, err
		}
		return o.View(), nil
	}))
	d.register("order.next_id", op("Failed to generate order ID.", func(ctx context.Context, _ empty) (interface{}, error) {
		id, err := svc.NextID(ctx)
		return nextIDResult{ID: id}, err
	}))
}

func (d *Dispatcher) registerPayments(svc PaymentService) {
	d.register("payment.list", op("Failed to load payments.", func(ctx context.Context, _ empty) (interface{}, error) {
		return svc.List(ctx), nil
	}))
	d.register("payment.get", op("Failed to load payment.", func(ctx context.Context, p idPayload) (interface{}, error) {
		return svc.Get(ctx, p.ID)
	}))
	d.register("payment.get_by_order", op("Failed to load payment.", func(ctx context.Context, p orderRef) (interface{}, error) {
		return svc.GetByOrder(ctx, p.OrderID)
	}))
	d.register("payment.create", op("Payment failed.", func(ctx context.Context, f paymentForm) (interface{}, error) {
		p, err := f.payment()
		if err != nil {
			return nil, err
		}
		return svc.Create(ctx, p)
	}))
	d.register("payment.update", op("Failed to update payment.", func(ctx context.Context, f paymentForm) (interface{}, error) {
		p, err := f.payment()
		if err != nil {
			return nil, err
		}
		if err := svc.Update(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}))
	d.register("payment.delete", op("Failed to delete payment.", func(ctx context.Context, p idPayload) (interface{}, error) {
		return p, svc.Delete(ctx, p.ID)
	}))
	d.register("payment.next_id", op("Failed to generate payment ID.", func(ctx context.Context, _ empty) (interface{}, error) {
		id, err := svc.NextID(ctx)
		return nextIDResult{ID: id}, err
	}))
}

func (d *Dispatcher) registerDashboard(svc DashboardService) {
	d.register("dashboard.summary", op("Failed to load dashboard.", func(ctx context.Context, _ empty) (interface{}, error) {
		return svc.Current(ctx)
	}))
}
