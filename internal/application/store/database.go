package store

import (
	"context"

	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

// Database los cuatro stores construidos sobre un mismo Writer y un mismo almacenamiento.
type Database struct {
	Roles *RoleStore
	Users *UserStore
	Items *ItemStore
	Sales *SaleStore
}

// Open construye los stores y los rehidrata desde kv.
func Open(ctx context.Context, kv repository.KeyValueStore, opts Options) (*Database, error) {
	opts = opts.withDefaults()
	w := newWriter(kv, opts)

	users := newUserStore(w)
	items := newItemStore(w)
	db := &Database{
		Roles: newRoleStore(w, users.Collection),
		Users: users,
		Items: items,
		Sales: newSaleStore(w, items),
	}

	loaders := []struct {
		name string
		load func(context.Context, repository.KeyValueStore) error
		size func() int
	}{
		{db.Roles.name, db.Roles.load, db.Roles.Len},
		{db.Users.name, db.Users.load, db.Users.Len},
		{db.Items.name, db.Items.load, db.Items.Len},
		{db.Sales.name, db.Sales.load, db.Sales.Len},
	}
	for _, l := range loaders {
		if err := l.load(ctx, kv); err != nil {
			return nil, err
		}
		w.log.Info().Str("store", l.name).Int("count", l.size()).Msg("store rehidratado")
	}
	return db, nil
}
