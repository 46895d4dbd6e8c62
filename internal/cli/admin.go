package cli

import (
	"context"
	"fmt"

	"github.com/lfanzott/schulmanager/internal/accounts"
)

// Users prints every account in file order.
func (a *App) Users(ctx context.Context) error {
	list, err := a.accounts.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, acc := range list {
		fmt.Fprintf(a.out, "%-20s %s\n", acc.Name, acc.Role)
	}
	return nil
}

// AddUser creates a regular user account on behalf of the admin.
func (a *App) AddUser(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.accounts.Register(ctx, name, password, accounts.RoleUser); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User %q created.\n", name)
	return nil
}

// DeleteUser removes an account. Deleting the own session account is
// refused; deleting an unknown name is a no-op.
func (a *App) DeleteUser(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Username to delete", a.out)
	if err != nil {
		return err
	}

	if err := a.accounts.Delete(ctx, a.userName, name); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User %q deleted.\n", name)
	return nil
}

// RenameUser changes an account name, rekeys its path bindings and moves the
// default-location data files along.
func (a *App) RenameUser(ctx context.Context) error {
	oldName, err := getSimpleText(a.reader, "Current username", a.out)
	if err != nil {
		return err
	}
	newName, err := getSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return err
	}

	if err := a.accounts.Rename(ctx, oldName, newName); err != nil {
		return err
	}
	if err := a.registry.RenameUser(ctx, oldName, newName); err != nil {
		return err
	}

	// bound files keep their custom location; default-location files follow
	// the new name
	moves := [][2]string{
		{a.registry.DefaultAppointmentPath(oldName), a.registry.DefaultAppointmentPath(newName)},
		{a.registry.DefaultGoalPath(oldName), a.registry.DefaultGoalPath(newName)},
		{a.registry.PrefsPath(oldName), a.registry.PrefsPath(newName)},
	}
	for _, m := range moves {
		if err := moveFile(m[0], m[1]); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "User %q renamed to %q.\n", oldName, newName)
	return nil
}

// ChangeUserPassword replaces an account's password hash.
func (a *App) ChangeUserPassword(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.accounts.ChangePassword(ctx, name, password); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Password for %q changed.\n", name)
	return nil
}

// ChangeUserRole switches an account between the user and admin roles.
func (a *App) ChangeUserRole(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	roleStr, err := getSimpleText(a.reader, "New role (user/admin)", a.out)
	if err != nil {
		return err
	}
	if roleStr != string(accounts.RoleUser) && roleStr != string(accounts.RoleAdmin) {
		return fmt.Errorf("invalid role %q, expected user or admin", roleStr)
	}

	if err := a.accounts.ChangeRole(ctx, name, accounts.Role(roleStr)); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Role of %q is now %s.\n", name, roleStr)
	return nil
}
