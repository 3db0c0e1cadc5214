package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/floormap/mapfile"
	"github.com/katalvlaran/floormap/store"
)

// storeCmd groups catalogue operations
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the SQLite map catalogue",
	Long: `The catalogue location comes from store.dsn in the configuration file
or the FLOORMAP_STORE_DSN environment variable.`,
}

var storePutCmd = &cobra.Command{
	Use:   "put [map.json]...",
	Short: "Add or replace maps in the catalogue",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStorePut,
}

var storeGetCmd = &cobra.Command{
	Use:   "get [id] [out.json]",
	Short: "Write a catalogued map to a file (stdout when omitted)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runStoreGet,
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogued maps",
	Args:  cobra.NoArgs,
	RunE:  runStoreList,
}

var storeDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Remove a map from the catalogue",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreDelete,
}

var storeImportCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import every <ID>.json document of a directory (store.maps_dir when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStoreImport,
}

func init() {
	storeCmd.AddCommand(storePutCmd)
	storeCmd.AddCommand(storeGetCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeDeleteCmd)
	storeCmd.AddCommand(storeImportCmd)
}

// openStore opens the configured catalogue.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	logger.Debug("opening catalogue", zap.String("dsn", cfg.Store.DSN))
	return store.Open(cmd.Context(), cfg.Store.DSN)
}

func runStorePut(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, path := range args {
		m, err := mapfile.Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := st.Put(cmd.Context(), m); err != nil {
			return err
		}
		logger.Info("map stored", zap.String("path", path), zap.String("id", m.ID.String()))
		fmt.Fprintln(cmd.OutOrStdout(), m.ID)
	}
	return nil
}

func runStoreGet(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("bad id %q: %w", args[0], err)
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	m, err := st.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	if len(args) == 2 {
		return mapfile.Save(args[1], m)
	}
	return mapfile.Encode(cmd.OutOrStdout(), m)
}

func runStoreList(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	list, err := st.List(cmd.Context())
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSIZE\tWALLS\tFIELD")
	for _, s := range list {
		field := "-"
		if s.HasField {
			field = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d×%d@%.3f\t%d\t%s\n", s.ID, s.Title, s.Width, s.Height, s.Resolution, s.Walls, field)
	}
	return tw.Flush()
}

func runStoreDelete(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("bad id %q: %w", args[0], err)
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(cmd.Context(), id); err != nil {
		return err
	}
	logger.Info("map deleted", zap.String("id", id.String()))
	return nil
}

func runStoreImport(cmd *cobra.Command, args []string) error {
	root := cfg.Store.MapsDir
	if len(args) == 1 {
		root = args[0]
	}
	dir, err := mapfile.OpenDir(root)
	if err != nil {
		return err
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.Import(cmd.Context(), dir)
	if err != nil {
		return err
	}
	logger.Info("maps imported", zap.String("dir", root), zap.Int("count", n))
	fmt.Fprintf(cmd.OutOrStdout(), "%d maps imported\n", n)
	return nil
}
