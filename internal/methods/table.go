package methods

// TableVersion identifies the revision of the method table below.
// Bump it whenever an entry is added, removed or retyped.
const TableVersion = 1

// Entry maps a remote method name to its argument signature.
// Args is a space-delimited list of coercion tags; "" means untyped.
type Entry struct {
	Name string
	Args string
}

var table = []Entry{
	{"abandonTransaction", "str"},
	{"addMultiSigAddress", ""},
	{"addNode", ""},
	{"backupWallet", ""},
	{"bumpFee", "str"},
	{"createMultiSig", ""},
	{"createRawTransaction", "obj obj"},
	{"decodeRawTransaction", ""},
	{"dumpPrivKey", ""},
	{"encryptWallet", ""},
	{"estimateFee", ""},
	{"estimateSmartFee", "int str"},
	{"estimatePriority", "int"},
	{"generate", "int"},
	{"generateToAddress", "int str"},
	{"getAccount", ""},
	{"getAccountAddress", "str"},
	{"getAddedNodeInfo", ""},
	{"getAddressMempool", "obj"},
	{"getAddressesByLabel", ""},
	{"getAddressInfo", ""},
	{"getBalance", "str int"},
	{"getBestBlockHash", ""},
	{"getBlockDeltas", "str"},
	{"getBlock", "str int"},
	{"getBlockchainInfo", ""},
	{"getBlockCount", ""},
	{"getBlockHashes", "int int obj"},
	{"getBlockHash", "int"},
	{"getBlockHeader", "str"},
	{"getBlockNumber", ""},
	{"getBlockTemplate", ""},
	{"getConnectionCount", ""},
	{"getChainTips", ""},
	{"getDifficulty", ""},
	{"getGenerate", ""},
	{"getHashesPerSec", ""},
	{"getInfo", ""},
	{"getMemoryPool", ""},
	{"getMemPoolEntry", "str"},
	{"getMemPoolInfo", ""},
	{"getMiningInfo", ""},
	{"getNetworkInfo", ""},
	{"getNewAddress", ""},
	{"getNodeAddresses", ""},
	{"getPakInfo", ""},
	{"getPeerInfo", ""},
	{"getRawMemPool", "bool"},
	{"getRawTransaction", "str int"},
	{"getReceivedByAccount", "str int"},
	{"getReceivedByAddress", "str int"},
	{"getSpentInfo", "obj"},
	{"getTransaction", ""},
	{"getTxOut", "str int bool"},
	{"getTxOutSetInfo", ""},
	{"getWalletInfo", ""},
	{"getwalletpakinfo", ""},
	{"getWork", ""},
	{"help", ""},
	{"importAddress", "str str bool"},
	{"importMulti", "obj obj"},
	{"importPrivKey", "str str bool"},
	{"invalidateBlock", "str"},
	{"issueAsset", "float float bool"},
	{"keyPoolRefill", ""},
	{"listAccounts", "int"},
	{"listAddressGroupings", ""},
	{"listIssuances", ""},
	{"listReceivedByAccount", "int bool"},
	{"listReceivedByAddress", "int bool"},
	{"listSinceBlock", "str int"},
	{"listTransactions", "str int int"},
	{"listUnspent", "int int"},
	{"listLockUnspent", "bool"},
	{"lockUnspent", ""},
	{"move", "str str float int str"},
	{"prioritiseTransaction", "str float int"},
	{"sendFrom", "str str float int str str"},
	{"sendMany", "str obj int str"},
	{"sendRawTransaction", "str"},
	{"sendToAddress", "str float str str bool bool int str bool str"},
	{"setAccount", ""},
	{"setGenerate", "bool int"},
	{"setTxFee", "float"},
	{"signMessage", ""},
	{"signRawTransaction", ""},
	{"signRawTransactionWithWallet", "str"},
	{"stop", ""},
	{"submitBlock", ""},
	{"validateAddress", ""},
	{"verifyMessage", ""},
	{"walletLock", ""},
	{"walletPassPhrase", "string int"},
	{"walletPassphraseChange", ""},
}

// Table returns a copy of the method table in declaration order
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}
