// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/url"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/workload-service/pkg/account"
	"github.com/canonical/workload-service/pkg/workload"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Query users",
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List users, optionally of one organization",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := new(workload.ListResponse[*account.UserResponse])
		if err := getClient().get(cmd.Context(), "/users/", listQuery(cmd), resp); err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tORG_ID\tVERIFIED\tROLE")
		for _, u := range resp.Data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t%s\n", u.ID, u.Name, u.Email, u.OrgID, u.EmailVerified, u.Role)
		}
		return w.Flush()
	},
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks",
}

var createTaskCmd = &cobra.Command{
	Use:   "create [name] [org-member-id] [start-date] [end-date]",
	Short: "Create a task, dates use the YYYY-MM-DD format",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")

		req := &workload.CreateTaskRequest{
			Name:        args[0],
			OrgMemberID: args[1],
			StartDate:   args[2],
			EndDate:     args[3],
			Description: description,
		}

		task := new(workload.TaskResponse)
		if err := getClient().post(cmd.Context(), "/tasks/", req, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Task created: %s (ID: %s)\n", task.Name, task.ID)
		return nil
	},
}

var listTasksCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally of one organization",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := new(workload.ListResponse[*workload.TaskResponse])
		if err := getClient().get(cmd.Context(), "/tasks/", listQuery(cmd), resp); err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tORG_MEMBER_ID\tSTART\tEND")
		for _, t := range resp.Data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.OrgMemberID, t.StartDate, t.EndDate)
		}
		return w.Flush()
	},
}

var orgMembersCmd = &cobra.Command{
	Use:   "orgmembers",
	Short: "Query organization members",
}

var listOrgMembersCmd = &cobra.Command{
	Use:   "list [org-id]",
	Short: "List the members of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := listQuery(cmd)
		query.Set("orgId", args[0])

		resp := new(workload.ListResponse[*workload.OrgMemberResponse])
		if err := getClient().get(cmd.Context(), "/orgmembers/", query, resp); err != nil {
			return fmt.Errorf("failed to list org members: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tUSER_ID\tROLE\tCREATED_AT")
		for _, m := range resp.Data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.UserID, m.Role, m.CreatedAt)
		}
		return w.Flush()
	},
}

var getOrgMemberCmd = &cobra.Command{
	Use:   "by-user [user-id]",
	Short: "Get the membership of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := new(workload.OrgMemberResponse)
		if err := getClient().get(cmd.Context(), "/orgmember/byuser/", url.Values{"userId": {args[0]}}, m); err != nil {
			return fmt.Errorf("failed to get org member: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Org member %s of organization %s (role: %s)\n", m.ID, m.OrgID, m.Role)
		return nil
	},
}

// listQuery builds the pagination and organization filter shared by list commands.
func listQuery(cmd *cobra.Command) url.Values {
	query := url.Values{}

	if orgID, _ := cmd.Flags().GetString("org-id"); orgID != "" {
		query.Set("orgId", orgID)
	}

	if page, _ := cmd.Flags().GetInt64("page"); page > 0 {
		query.Set("page", strconv.FormatInt(page, 10))
	}

	if size, _ := cmd.Flags().GetInt64("size"); size > 0 {
		query.Set("size", strconv.FormatInt(size, 10))
	}

	return query
}

func init() {
	for _, c := range []*cobra.Command{listUsersCmd, listTasksCmd, listOrgMembersCmd} {
		c.Flags().Int64("page", 0, "Page number, starting at 1")
		c.Flags().Int64("size", 0, "Page size")
	}
	listUsersCmd.Flags().String("org-id", "", "Only list users of this organization")
	listTasksCmd.Flags().String("org-id", "", "Only list tasks of this organization")
	createTaskCmd.Flags().String("description", "", "Task description")

	usersCmd.AddCommand(listUsersCmd)
	tasksCmd.AddCommand(createTaskCmd)
	tasksCmd.AddCommand(listTasksCmd)
	orgMembersCmd.AddCommand(listOrgMembersCmd)
	orgMembersCmd.AddCommand(getOrgMemberCmd)

	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(orgMembersCmd)
}
